package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/controller"
)

// RegisterContactRoutes registra as rotas do formulário de contato
func RegisterContactRoutes(r *gin.RouterGroup, contactController *controller.ContactController) {
	r.POST("/contact", contactController.Create)
}
