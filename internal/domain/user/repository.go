package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail verifica se já existe um usuário com o email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateLastLogin atualiza a data do último login
	UpdateLastLogin(ctx context.Context, id string) error
}
