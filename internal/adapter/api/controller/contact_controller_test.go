package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/contact"
)

type fakeContactStore struct {
	createErr error
	created   []*contact.ContactRequest
}

func (s *fakeContactStore) Create(ctx context.Context, c *contact.ContactRequest) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, c)
	return nil
}

func (s *fakeContactStore) List(ctx context.Context, limit, offset int) ([]*contact.ContactRequest, error) {
	return s.created, nil
}

func (s *fakeContactStore) Count(ctx context.Context) (int, error) {
	return len(s.created), nil
}

func setupContactRouter(store *fakeContactStore) *gin.Engine {
	controller := NewContactController(store)
	router := gin.New()
	router.POST("/contact", controller.Create)
	router.GET("/admin/contacts", controller.List)
	return router
}

func TestContactCreate(t *testing.T) {
	store := &fakeContactStore{}
	router := setupContactRouter(store)

	resp := postJSON(router, "/contact", map[string]string{
		"name":    "Maria",
		"email":   "maria@example.com",
		"message": "I would like more information.",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(store.created))
	}
	if store.created[0].Email != "maria@example.com" {
		t.Fatalf("unexpected stored email: %q", store.created[0].Email)
	}
}

func TestContactCreateMissingFields(t *testing.T) {
	store := &fakeContactStore{}
	router := setupContactRouter(store)

	resp := postJSON(router, "/contact", map[string]string{"name": "Maria"})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if len(store.created) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(store.created))
	}
}

func TestContactCreateInvalidEmail(t *testing.T) {
	store := &fakeContactStore{}
	router := setupContactRouter(store)

	resp := postJSON(router, "/contact", map[string]string{
		"name":    "Maria",
		"email":   "not-an-email",
		"message": "Hello",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestContactCreateStorageFailure(t *testing.T) {
	store := &fakeContactStore{createErr: errors.New("database down")}
	router := setupContactRouter(store)

	resp := postJSON(router, "/contact", map[string]string{
		"name":    "Maria",
		"email":   "maria@example.com",
		"message": "Hello",
	})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestContactList(t *testing.T) {
	store := &fakeContactStore{created: []*contact.ContactRequest{
		{ID: "1", Name: "Maria", Email: "maria@example.com", Message: "Hi", CreatedAt: time.Now()},
	}}
	router := setupContactRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/admin/contacts", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Contacts   []map[string]interface{} `json:"contacts"`
		TotalCount int                      `json:"total_count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.TotalCount != 1 || len(body.Contacts) != 1 {
		t.Fatalf("unexpected listing: %+v", body)
	}
}
