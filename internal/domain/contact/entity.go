package contact

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptyMessage = errors.New("mensagem não pode ser vazia")
	ErrInvalidEmail = errors.New("email inválido")
)

// ContactRequest representa uma submissão do formulário de contato
type ContactRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactRequest cria uma nova submissão validando os campos obrigatórios
func NewContactRequest(name, email, message string) (*ContactRequest, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	return &ContactRequest{
		Name:    name,
		Email:   email,
		Message: message,
	}, nil
}
