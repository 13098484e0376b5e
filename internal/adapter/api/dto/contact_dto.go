package dto

import (
	"time"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/contact"
)

// ContactRequest representa os dados do formulário de contato
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ContactResponse representa uma submissão registrada
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListResponse representa a listagem paginada de contatos
type ContactListResponse struct {
	Contacts   []ContactResponse `json:"contacts"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToContactResponse converte a entidade de domínio para o DTO de resposta
func ToContactResponse(c *contact.ContactRequest) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
