package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/controller"
)

// RegisterChatRoutes registra as rotas do assistente de conversação
func RegisterChatRoutes(r *gin.RouterGroup, chatController *controller.ChatController) {
	r.POST("/chat", chatController.Chat)
}
