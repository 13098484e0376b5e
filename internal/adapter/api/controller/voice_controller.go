package controller

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/dto"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/pipeline"
)

// VoiceService abstrai o pipeline de voz, facilitando os testes do handler
type VoiceService interface {
	Process(ctx context.Context, audioPath, userName string) (*pipeline.VoiceResult, error)
}

// VoiceController gerencia as requisições de conversa por voz
type VoiceController struct {
	voiceService VoiceService
	logger       logger.Logger
}

// NewVoiceController cria uma nova instância de VoiceController
func NewVoiceController(voiceService VoiceService, log logger.Logger) *VoiceController {
	return &VoiceController{
		voiceService: voiceService,
		logger:       log,
	}
}

// Voice processa um áudio gravado pelo usuário
// @Summary Envia um áudio ao assistente
// @Description Transcreve o áudio, processa a fala e retorna a resposta com áudio
// @Tags chat
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Áudio gravado"
// @Param user_name formData string false "Nome do usuário"
// @Success 200 {object} dto.VoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /voice [post]
func (c *VoiceController) Voice(ctx *gin.Context) {
	file, err := ctx.FormFile("audio")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Áudio não informado", err.Error()))
		return
	}

	userName := ctx.PostForm("user_name")

	// O áudio recebido vive só durante esta requisição: gravar em arquivo
	// temporário e remover em qualquer caminho de saída
	audioPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := ctx.SaveUploadedFile(file, audioPath); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao receber áudio", err.Error()))
		return
	}
	defer func() {
		if err := os.Remove(audioPath); err != nil {
			c.logger.Warn("Erro ao remover áudio temporário", "path", audioPath, "error", err)
		}
	}()

	result, err := c.voiceService.Process(ctx.Request.Context(), audioPath, userName)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar áudio", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.VoiceResponse{
		UserText: result.UserText,
		Reply:    result.Reply,
		AudioURL: result.AudioURL,
	})
}
