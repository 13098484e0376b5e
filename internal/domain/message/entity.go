package message

import (
	"errors"
	"time"
)

var (
	ErrEmptyUserName = errors.New("nome do participante não pode ser vazio")
	ErrEmptyText     = errors.New("texto da mensagem não pode ser vazio")
	ErrInvalidRole   = errors.New("papel da mensagem inválido")
)

// Role identifica quem produziu o turno da conversa
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// IsValid verifica se o papel é um dos valores aceitos
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleBot
}

// Message representa um turno imutável de uma conversa.
// O timestamp é atribuído pelo servidor no momento da gravação;
// não existe caminho de atualização ou remoção.
type Message struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage cria uma nova mensagem validando os campos obrigatórios
func NewMessage(userName, text string, role Role) (*Message, error) {
	if userName == "" {
		return nil, ErrEmptyUserName
	}
	if text == "" {
		return nil, ErrEmptyText
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &Message{
		UserName: userName,
		Text:     text,
		Role:     role,
	}, nil
}
