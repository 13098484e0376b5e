package contact

import (
	"context"
)

// Repository define a interface para o registro de contatos recebidos
type Repository interface {
	// Create persiste uma nova submissão do formulário de contato
	Create(ctx context.Context, c *ContactRequest) error

	// List retorna as submissões mais recentes com paginação
	List(ctx context.Context, limit, offset int) ([]*ContactRequest, error)

	// Count conta o total de submissões registradas
	Count(ctx context.Context) (int, error)
}
