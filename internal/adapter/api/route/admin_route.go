package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/controller"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/auth"
)

// RegisterAdminRoutes registra as rotas administrativas de consulta.
// Todas exigem token JWT de um usuário com papel admin.
func RegisterAdminRoutes(r *gin.RouterGroup, messageController *controller.MessageController, contactController *controller.ContactController) {
	adminRouter := r.Group("/admin")
	adminRouter.Use(auth.JWTAuthMiddleware(), auth.AdminOnlyMiddleware())
	{
		adminRouter.GET("/messages", messageController.List)
		adminRouter.GET("/messages/user/:name", messageController.ListByUser)
		adminRouter.GET("/contacts", contactController.List)
	}
}
