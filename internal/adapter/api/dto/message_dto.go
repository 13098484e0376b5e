package dto

import (
	"time"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/message"
)

// MessageResponse representa um turno do histórico nas respostas da API
type MessageResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageListResponse representa a listagem paginada do histórico
type MessageListResponse struct {
	Messages   []MessageResponse `json:"messages"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToMessageResponse converte a entidade de domínio para o DTO de resposta
func ToMessageResponse(m *message.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Text:      m.Text,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
	}
}

// ToMessageListResponse monta a resposta paginada do histórico
func ToMessageListResponse(messages []*message.Message, totalCount int, p Pagination) MessageListResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, ToMessageResponse(m))
	}

	return MessageListResponse{
		Messages:   responses,
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(totalCount),
	}
}
