package message

import (
	"context"
	"time"
)

// Filter descreve os critérios de busca do histórico de conversas.
// Campos vazios são ignorados na consulta.
type Filter struct {
	// UserName filtra pelo nome exibido do participante (busca parcial)
	UserName string

	// Text filtra pelo conteúdo da mensagem (busca parcial)
	Text string

	// Role filtra pelo papel (user ou bot); vazio retorna ambos
	Role Role

	// From e To delimitam o intervalo de criação
	From *time.Time
	To   *time.Time
}

// Repository define a interface para o histórico de conversas.
// O histórico é append-only: mensagens nunca são alteradas ou removidas.
type Repository interface {
	// Append grava um novo turno e retorna a mensagem criada
	// com ID e timestamp atribuídos pelo servidor
	Append(ctx context.Context, userName, text string, role Role) (*Message, error)

	// FindByUser retorna o histórico de um participante com paginação
	FindByUser(ctx context.Context, userName string, limit, offset int) ([]*Message, error)

	// Search busca mensagens pelos critérios do filtro com paginação
	Search(ctx context.Context, filter Filter, limit, offset int) ([]*Message, error)

	// CountByFilter conta quantas mensagens atendem ao filtro
	CountByFilter(ctx context.Context, filter Filter) (int, error)
}
