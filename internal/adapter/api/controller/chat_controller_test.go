package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/pipeline"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeChatService struct {
	result *pipeline.ChatResult
	err    error
	texts  []string
	names  []string
}

func (s *fakeChatService) Process(ctx context.Context, userText, userName string) (*pipeline.ChatResult, error) {
	s.texts = append(s.texts, userText)
	s.names = append(s.names, userName)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func setupChatRouter(service *fakeChatService) *gin.Engine {
	router := gin.New()
	router.POST("/chat", NewChatController(service).Chat)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestChatReturnsReply(t *testing.T) {
	service := &fakeChatService{result: &pipeline.ChatResult{Reply: "Estoy bien.", Lang: "es"}}
	router := setupChatRouter(service)

	resp := postJSON(router, "/chat", map[string]string{
		"message":   "Hola, ¿cómo estás?",
		"user_name": "Maria",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["reply"] != "Estoy bien." {
		t.Fatalf("unexpected reply: %q", body["reply"])
	}
	if body["lang"] != "es" {
		t.Fatalf("unexpected lang: %q", body["lang"])
	}

	if len(service.texts) != 1 || service.texts[0] != "Hola, ¿cómo estás?" {
		t.Fatalf("unexpected text forwarded to the pipeline: %v", service.texts)
	}
	if service.names[0] != "Maria" {
		t.Fatalf("unexpected user name forwarded: %q", service.names[0])
	}
}

func TestChatMissingMessage(t *testing.T) {
	service := &fakeChatService{}
	router := setupChatRouter(service)

	resp := postJSON(router, "/chat", map[string]string{"user_name": "Maria"})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("expected error field in response body")
	}
	if len(service.texts) != 0 {
		t.Fatalf("expected pipeline not to be called, got %d calls", len(service.texts))
	}
}

func TestChatPipelineFailure(t *testing.T) {
	service := &fakeChatService{err: errors.New("translation failed")}
	router := setupChatRouter(service)

	resp := postJSON(router, "/chat", map[string]string{"message": "Hola"})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("expected error field in response body")
	}
}
