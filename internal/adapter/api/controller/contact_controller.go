package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/dto"
	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/contact"
)

// ContactController gerencia as requisições do formulário de contato
type ContactController struct {
	contactRepository contact.Repository
}

// NewContactController cria uma nova instância de ContactController
func NewContactController(contactRepository contact.Repository) *ContactController {
	return &ContactController{
		contactRepository: contactRepository,
	}
}

// Create registra uma submissão do formulário de contato
// @Summary Envia uma mensagem de contato
// @Description Valida e registra uma submissão do formulário de contato
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body dto.ContactRequest true "Dados do contato"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contact [post]
func (c *ContactController) Create(ctx *gin.Context) {
	var request dto.ContactRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Campos obrigatórios ausentes", err.Error()))
		return
	}

	submission, err := contact.NewContactRequest(request.Name, request.Email, request.Message)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados de contato inválidos", err.Error()))
		return
	}

	if err := c.contactRepository.Create(ctx.Request.Context(), submission); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar contato", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Contato registrado", nil))
}

// List retorna as submissões registradas com paginação
// @Summary Lista as mensagens de contato
// @Description Retorna as submissões do formulário de contato, das mais recentes às mais antigas
// @Tags contact
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ContactListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /admin/contacts [get]
func (c *ContactController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	contacts, err := c.contactRepository.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar contatos", err.Error()))
		return
	}

	totalCount, err := c.contactRepository.Count(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar contatos", err.Error()))
		return
	}

	responses := make([]dto.ContactResponse, 0, len(contacts))
	for _, submission := range contacts {
		responses = append(responses, dto.ToContactResponse(submission))
	}

	ctx.JSON(http.StatusOK, dto.ContactListResponse{
		Contacts:   responses,
		TotalCount: totalCount,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: pagination.TotalPages(totalCount),
	})
}
