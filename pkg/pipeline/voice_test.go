package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/bot"
)

type fakeVoiceBot struct {
	result *bot.VoiceResult
	err    error
	paths  []string
}

func (b *fakeVoiceBot) SendVoice(ctx context.Context, audioPath string) (*bot.VoiceResult, error) {
	b.paths = append(b.paths, audioPath)
	if b.err != nil {
		return nil, b.err
	}
	return b.result, nil
}

func TestVoiceProcessMapsBotResult(t *testing.T) {
	voiceBot := &fakeVoiceBot{result: &bot.VoiceResult{
		Transcript: "What day is it?",
		Reply:      "Today is Monday.",
		AudioURL:   "https://bot.example/audio/reply.wav",
	}}
	store := &fakeMessageStore{}
	p := NewVoicePipeline(voiceBot, store, nopLogger{})

	result, err := p.Process(context.Background(), "/tmp/input.wav", "John")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UserText != "What day is it?" {
		t.Fatalf("unexpected transcript: %q", result.UserText)
	}
	if result.Reply != "Today is Monday." {
		t.Fatalf("unexpected reply: %q", result.Reply)
	}
	if result.AudioURL != "https://bot.example/audio/reply.wav" {
		t.Fatalf("unexpected audio URL: %q", result.AudioURL)
	}
	if len(voiceBot.paths) != 1 || voiceBot.paths[0] != "/tmp/input.wav" {
		t.Fatalf("expected audio path forwarded to bot, got %v", voiceBot.paths)
	}
}

func TestVoiceProcessPropagatesBotFailure(t *testing.T) {
	voiceBot := &fakeVoiceBot{err: errors.New("timeout")}
	store := &fakeMessageStore{}
	p := NewVoicePipeline(voiceBot, store, nopLogger{})

	if _, err := p.Process(context.Background(), "/tmp/input.wav", "John"); err == nil {
		t.Fatal("expected bot failure to propagate")
	}
}

func TestVoiceProcessDoesNotPersistTurns(t *testing.T) {
	voiceBot := &fakeVoiceBot{result: &bot.VoiceResult{
		Transcript: "Hello",
		Reply:      "Hi there.",
	}}
	store := &fakeMessageStore{}
	p := NewVoicePipeline(voiceBot, store, nopLogger{})

	if _, err := p.Process(context.Background(), "/tmp/input.wav", "John"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.turns) != 0 {
		t.Fatalf("expected no persisted turns for voice, got %d", len(store.turns))
	}
}
