package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/dto"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/pipeline"
)

// ChatService abstrai o pipeline de conversa, facilitando os testes do handler
type ChatService interface {
	Process(ctx context.Context, userText, userName string) (*pipeline.ChatResult, error)
}

// ChatController gerencia as requisições de conversa por texto
type ChatController struct {
	chatService ChatService
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(chatService ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Chat processa uma mensagem de texto do usuário
// @Summary Envia uma mensagem ao assistente
// @Description Processa a mensagem do usuário e retorna a resposta no idioma detectado
// @Tags chat
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Mensagem do usuário"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Mensagem não informada", err.Error()))
		return
	}

	result, err := c.chatService.Process(ctx.Request.Context(), request.Message, request.UserName)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar mensagem", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{
		Reply: result.Reply,
		Lang:  result.Lang,
	})
}
