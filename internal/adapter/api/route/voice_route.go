package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/controller"
)

// RegisterVoiceRoutes registra as rotas do assistente de voz
func RegisterVoiceRoutes(r *gin.RouterGroup, voiceController *controller.VoiceController) {
	r.POST("/voice", voiceController.Voice)
}
