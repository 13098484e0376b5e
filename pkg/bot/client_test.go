package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{BaseURL: baseURL, Timeout: 5 * time.Second}, nopLogger{})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}, nopLogger{}); err != ErrMissingBaseURL {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestSendTextReturnsReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/run/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Data []interface{} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if len(req.Data) != 1 || req.Data[0] != "Hello" {
			t.Errorf("unexpected request data: %v", req.Data)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{"Hi, how can I help?"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	reply, err := client.SendText(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Hi, how can I help?" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestSendTextNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.SendText(context.Background(), "Hello"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestSendTextRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":  []interface{}{},
			"error": "model not loaded",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.SendText(context.Background(), "Hello")
	if err == nil {
		t.Fatal("expected error when response carries an error field")
	}
	if !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("expected remote error message, got %v", err)
	}
}

func TestSendTextUnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{"a", "b"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.SendText(context.Background(), "Hello"); err == nil {
		t.Fatal("expected error for response with 2 elements")
	}
}

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.wav")
	if err := os.WriteFile(path, []byte("RIFF-fake-wav"), 0o600); err != nil {
		t.Fatalf("failed to write temp audio: %v", err)
	}
	return path
}

func TestSendVoiceReturnsNormalizedResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/run/voice" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Data []map[string]interface{} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if len(req.Data) != 1 {
			t.Errorf("expected 1 audio payload, got %d", len(req.Data))
		} else {
			data, _ := req.Data[0]["data"].(string)
			if !strings.HasPrefix(data, "data:audio/wav;base64,") {
				t.Errorf("expected base64 audio payload, got %q", data)
			}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{
				"What time is it?",
				"It is noon.",
				map[string]interface{}{"url": "https://bot.example/audio/reply.wav"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.SendVoice(context.Background(), writeTempAudio(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Transcript != "What time is it?" {
		t.Fatalf("unexpected transcript: %q", result.Transcript)
	}
	if result.Reply != "It is noon." {
		t.Fatalf("unexpected reply: %q", result.Reply)
	}
	if result.AudioURL != "https://bot.example/audio/reply.wav" {
		t.Fatalf("unexpected audio URL: %q", result.AudioURL)
	}
}

func TestSendVoiceAudioRefAsString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{"Hello", "Hi.", "/static/reply.wav"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.SendVoice(context.Background(), writeTempAudio(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AudioURL != "/static/reply.wav" {
		t.Fatalf("unexpected audio URL: %q", result.AudioURL)
	}
}

func TestSendVoiceShortResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []interface{}{"only transcript"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.SendVoice(context.Background(), writeTempAudio(t)); err == nil {
		t.Fatal("expected error for response with fewer than 3 elements")
	}
}

func TestSendVoiceMissingFile(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")
	if _, err := client.SendVoice(context.Background(), "/nonexistent/audio.wav"); err == nil {
		t.Fatal("expected error for missing audio file")
	}
}
