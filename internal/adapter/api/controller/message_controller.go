package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/dto"
	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/message"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
)

// MessageController gerencia as consultas administrativas ao histórico de conversas
type MessageController struct {
	messageRepository message.Repository
	logger            logger.Logger
}

// NewMessageController cria uma nova instância de MessageController
func NewMessageController(messageRepository message.Repository, log logger.Logger) *MessageController {
	return &MessageController{
		messageRepository: messageRepository,
		logger:            log,
	}
}

// List lista o histórico de mensagens com filtros e paginação
// @Summary Lista o histórico de conversas
// @Description Retorna os turnos gravados, com filtros por usuário, texto, papel e período
// @Tags admin
// @Produce json
// @Param name query string false "Filtrar por nome de usuário (busca parcial)"
// @Param text query string false "Filtrar por conteúdo da mensagem (busca parcial)"
// @Param role query string false "Filtrar por papel (user ou bot)"
// @Param from query string false "Início do período (RFC3339)"
// @Param to query string false "Fim do período (RFC3339)"
// @Param page query int false "Página (padrão: 1)"
// @Param page_size query int false "Itens por página (padrão: 20, máximo: 100)"
// @Success 200 {object} dto.MessageListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /admin/messages [get]
func (c *MessageController) List(ctx *gin.Context) {
	filter := message.Filter{
		UserName: ctx.Query("name"),
		Text:     ctx.Query("text"),
	}

	if roleParam := ctx.Query("role"); roleParam != "" {
		role := message.Role(roleParam)
		if !role.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Papel inválido",
				"Use 'user' ou 'bot'",
			))
			return
		}
		filter.Role = role
	}

	if fromParam := ctx.Query("from"); fromParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Data inicial inválida",
				"Use o formato RFC3339, ex: 2026-01-02T15:04:05Z",
			))
			return
		}
		filter.From = &from
	}

	if toParam := ctx.Query("to"); toParam != "" {
		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest,
				"Data final inválida",
				"Use o formato RFC3339, ex: 2026-01-02T15:04:05Z",
			))
			return
		}
		filter.To = &to
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	messages, err := c.messageRepository.Search(ctx.Request.Context(), filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("Erro ao consultar histórico de mensagens", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Erro ao consultar histórico",
			err.Error(),
		))
		return
	}

	totalCount, err := c.messageRepository.CountByFilter(ctx.Request.Context(), filter)
	if err != nil {
		c.logger.Error("Erro ao contar mensagens", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Erro ao consultar histórico",
			err.Error(),
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(messages, totalCount, pagination))
}

// ListByUser lista o histórico de um participante específico
// @Summary Lista o histórico de um participante
// @Description Retorna os turnos gravados para o nome de usuário informado
// @Tags admin
// @Produce json
// @Param name path string true "Nome de usuário"
// @Param page query int false "Página (padrão: 1)"
// @Param page_size query int false "Itens por página (padrão: 20, máximo: 100)"
// @Success 200 {object} dto.MessageListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security Bearer
// @Router /admin/messages/user/{name} [get]
func (c *MessageController) ListByUser(ctx *gin.Context) {
	userName := ctx.Param("name")

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	messages, err := c.messageRepository.FindByUser(ctx.Request.Context(), userName, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("Erro ao consultar histórico do participante", "user", userName, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Erro ao consultar histórico",
			err.Error(),
		))
		return
	}

	totalCount, err := c.messageRepository.CountByFilter(ctx.Request.Context(), message.Filter{UserName: userName})
	if err != nil {
		c.logger.Error("Erro ao contar mensagens do participante", "user", userName, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Erro ao consultar histórico",
			err.Error(),
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(messages, totalCount, pagination))
}
