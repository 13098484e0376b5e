package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/message"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/translator"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

type fakeDetector struct {
	lang string
	err  error
}

func (d fakeDetector) Detect(text string) (string, error) {
	return d.lang, d.err
}

type translation struct {
	text       string
	sourceLang string
	targetLang string
}

type fakeTranslator struct {
	replies map[string]string
	err     error
	calls   []translation
}

func (t *fakeTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	t.calls = append(t.calls, translation{text: text, sourceLang: sourceLang, targetLang: targetLang})
	if t.err != nil {
		return "", t.err
	}
	if reply, ok := t.replies[text]; ok {
		return reply, nil
	}
	return text, nil
}

type fakeTextBot struct {
	reply string
	err   error
	calls []string
}

func (b *fakeTextBot) SendText(ctx context.Context, msg string) (string, error) {
	b.calls = append(b.calls, msg)
	if b.err != nil {
		return "", b.err
	}
	return b.reply, nil
}

type appendedTurn struct {
	userName string
	text     string
	role     message.Role
}

type fakeMessageStore struct {
	appendErr error
	turns     []appendedTurn
}

func (s *fakeMessageStore) Append(ctx context.Context, userName, text string, role message.Role) (*message.Message, error) {
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	s.turns = append(s.turns, appendedTurn{userName: userName, text: text, role: role})
	return &message.Message{
		ID:        "fake-id",
		UserName:  userName,
		Text:      text,
		Role:      role,
		CreatedAt: time.Now(),
	}, nil
}

func (s *fakeMessageStore) FindByUser(ctx context.Context, userName string, limit, offset int) ([]*message.Message, error) {
	return nil, nil
}

func (s *fakeMessageStore) Search(ctx context.Context, filter message.Filter, limit, offset int) ([]*message.Message, error) {
	return nil, nil
}

func (s *fakeMessageStore) CountByFilter(ctx context.Context, filter message.Filter) (int, error) {
	return len(s.turns), nil
}

func newTestPipeline(detector fakeDetector, trans *fakeTranslator, bot *fakeTextBot, store *fakeMessageStore) *ChatPipeline {
	return NewChatPipeline(
		Config{EnableTranslationPivot: true},
		detector,
		trans,
		bot,
		store,
		nopLogger{},
	)
}

func TestProcessTranslatesThroughEnglishPivot(t *testing.T) {
	trans := &fakeTranslator{replies: map[string]string{
		"Hola, ¿cómo estás?": "Hello, how are you?",
		"I am fine.":         "Estoy bien.",
	}}
	bot := &fakeTextBot{reply: "I am fine."}
	store := &fakeMessageStore{}
	p := newTestPipeline(fakeDetector{lang: "es"}, trans, bot, store)

	result, err := p.Process(context.Background(), "Hola, ¿cómo estás?", "Maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reply != "Estoy bien." {
		t.Fatalf("expected localized reply, got %q", result.Reply)
	}
	if result.Lang != "es" {
		t.Fatalf("expected lang es, got %q", result.Lang)
	}

	if len(bot.calls) != 1 || bot.calls[0] != "Hello, how are you?" {
		t.Fatalf("expected bot to receive the English input, got %v", bot.calls)
	}

	if len(trans.calls) != 2 {
		t.Fatalf("expected 2 translations, got %d", len(trans.calls))
	}
	if trans.calls[0].sourceLang != translator.SourceAuto || trans.calls[0].targetLang != "en" {
		t.Fatalf("unexpected input translation direction: %+v", trans.calls[0])
	}
	if trans.calls[1].sourceLang != "en" || trans.calls[1].targetLang != "es" {
		t.Fatalf("unexpected reverse translation direction: %+v", trans.calls[1])
	}
}

func TestProcessPersistsUserTurnBeforeBotTurn(t *testing.T) {
	trans := &fakeTranslator{replies: map[string]string{
		"Hola":       "Hello",
		"I am fine.": "Estoy bien.",
	}}
	bot := &fakeTextBot{reply: "I am fine."}
	store := &fakeMessageStore{}
	p := newTestPipeline(fakeDetector{lang: "es"}, trans, bot, store)

	if _, err := p.Process(context.Background(), "Hola", "Maria"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.turns) != 2 {
		t.Fatalf("expected 2 persisted turns, got %d", len(store.turns))
	}
	if store.turns[0].role != message.RoleUser || store.turns[0].text != "Hola" {
		t.Fatalf("expected first turn to be the user's original text, got %+v", store.turns[0])
	}
	if store.turns[1].role != message.RoleBot || store.turns[1].text != "Estoy bien." {
		t.Fatalf("expected second turn to be the localized reply, got %+v", store.turns[1])
	}
	if store.turns[0].userName != "Maria" || store.turns[1].userName != "Maria" {
		t.Fatalf("expected both turns under the same user name, got %+v", store.turns)
	}
}

func TestProcessEnglishInputSkipsTranslation(t *testing.T) {
	trans := &fakeTranslator{}
	bot := &fakeTextBot{reply: "Hello there."}
	store := &fakeMessageStore{}
	p := newTestPipeline(fakeDetector{lang: "en"}, trans, bot, store)

	result, err := p.Process(context.Background(), "Hello", "John")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reply != "Hello there." {
		t.Fatalf("expected raw bot reply, got %q", result.Reply)
	}
	if len(trans.calls) != 0 {
		t.Fatalf("expected no translations for English input, got %d", len(trans.calls))
	}
}

func TestProcessDetectionFailureAssumesEnglish(t *testing.T) {
	trans := &fakeTranslator{}
	bot := &fakeTextBot{reply: "OK."}
	store := &fakeMessageStore{}
	p := newTestPipeline(fakeDetector{err: errors.New("undetermined")}, trans, bot, store)

	result, err := p.Process(context.Background(), "???", "John")
	if err != nil {
		t.Fatalf("expected detection failure to be tolerated, got %v", err)
	}
	if result.Lang != "en" {
		t.Fatalf("expected fallback lang en, got %q", result.Lang)
	}
	if len(trans.calls) != 0 {
		t.Fatalf("expected no translations after detection failure, got %d", len(trans.calls))
	}
	if len(store.turns) != 2 {
		t.Fatalf("expected turn to be persisted, got %d rows", len(store.turns))
	}
}

func TestProcessBotFailureLocalizesFallbackReply(t *testing.T) {
	trans := &fakeTranslator{replies: map[string]string{
		"Hola":        "Hello",
		FallbackReply: "Lo siento, el asistente no está disponible.",
	}}
	bot := &fakeTextBot{err: errors.New("connection refused")}
	store := &fakeMessageStore{}
	p := newTestPipeline(fakeDetector{lang: "es"}, trans, bot, store)

	result, err := p.Process(context.Background(), "Hola", "Maria")
	if err != nil {
		t.Fatalf("expected bot failure to degrade, got %v", err)
	}
	if result.Reply != "Lo siento, el asistente no está disponible." {
		t.Fatalf("expected localized fallback reply, got %q", result.Reply)
	}
	if len(store.turns) != 2 {
		t.Fatalf("expected both turns persisted on fallback, got %d", len(store.turns))
	}
	if store.turns[1].text != "Lo siento, el asistente no está disponible." {
		t.Fatalf("expected persisted bot turn to carry the fallback, got %q", store.turns[1].text)
	}
}

func TestProcessTranslatorFailureAbortsTurn(t *testing.T) {
	trans := &fakeTranslator{err: errors.New("service unavailable")}
	bot := &fakeTextBot{reply: "OK."}
	store := &fakeMessageStore{}
	p := newTestPipeline(fakeDetector{lang: "es"}, trans, bot, store)

	if _, err := p.Process(context.Background(), "Hola", "Maria"); err == nil {
		t.Fatal("expected translator failure to abort the turn")
	}
	if len(bot.calls) != 0 {
		t.Fatalf("expected bot not to be called, got %d calls", len(bot.calls))
	}
	if len(store.turns) != 0 {
		t.Fatalf("expected no persisted turns, got %d", len(store.turns))
	}
}

func TestProcessPersistenceFailureAbortsTurn(t *testing.T) {
	trans := &fakeTranslator{}
	bot := &fakeTextBot{reply: "OK."}
	store := &fakeMessageStore{appendErr: errors.New("database down")}
	p := newTestPipeline(fakeDetector{lang: "en"}, trans, bot, store)

	if _, err := p.Process(context.Background(), "Hello", "John"); err == nil {
		t.Fatal("expected persistence failure to abort the turn")
	}
}

func TestProcessWithoutPivotSendsRawText(t *testing.T) {
	trans := &fakeTranslator{}
	bot := &fakeTextBot{reply: "Ciao!"}
	store := &fakeMessageStore{}
	p := NewChatPipeline(
		Config{EnableTranslationPivot: false},
		fakeDetector{lang: "it"},
		trans,
		bot,
		store,
		nopLogger{},
	)

	result, err := p.Process(context.Background(), "Ciao, come stai?", "Luca")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Lang != "" {
		t.Fatalf("expected empty lang without pivot, got %q", result.Lang)
	}
	if len(trans.calls) != 0 {
		t.Fatalf("expected no translations without pivot, got %d", len(trans.calls))
	}
	if len(bot.calls) != 1 || bot.calls[0] != "Ciao, come stai?" {
		t.Fatalf("expected raw text sent to bot, got %v", bot.calls)
	}
	if len(store.turns) != 2 {
		t.Fatalf("expected turns persisted without pivot, got %d", len(store.turns))
	}
}

func TestProcessEmptyUserNameDefaults(t *testing.T) {
	trans := &fakeTranslator{}
	bot := &fakeTextBot{reply: "Hi."}
	store := &fakeMessageStore{}
	p := newTestPipeline(fakeDetector{lang: "en"}, trans, bot, store)

	if _, err := p.Process(context.Background(), "Hello", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, turn := range store.turns {
		if turn.userName != DefaultUserName {
			t.Fatalf("expected default user name %q, got %q", DefaultUserName, turn.userName)
		}
	}
}
