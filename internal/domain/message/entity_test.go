package message

import (
	"errors"
	"testing"
)

func TestNewMessageValidation(t *testing.T) {
	if _, err := NewMessage("", "hello", RoleUser); !errors.Is(err, ErrEmptyUserName) {
		t.Fatalf("expected ErrEmptyUserName, got %v", err)
	}
	if _, err := NewMessage("Maria", "", RoleUser); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := NewMessage("Maria", "hello", Role("system")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	m, err := NewMessage("Maria", "hello", RoleBot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.UserName != "Maria" || m.Text != "hello" || m.Role != RoleBot {
		t.Fatalf("unexpected message: %+v", m)
	}
}

func TestRoleIsValid(t *testing.T) {
	if !RoleUser.IsValid() || !RoleBot.IsValid() {
		t.Fatal("expected user and bot roles to be valid")
	}
	if Role("admin").IsValid() {
		t.Fatal("expected unknown role to be invalid")
	}
}
