package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type MaterialRoutes struct {
	handler *handlers.MaterialHandler
}

func NewMaterialRoutes(handler *handlers.MaterialHandler) *MaterialRoutes {
	return &MaterialRoutes{handler: handler}
}

func (r *MaterialRoutes) RegisterRoutes(router *gin.RouterGroup) {
	materials := router.Group("/materials")
	materials.Use(middlewares.Authenticate)
	{
		materials.POST("", r.handler.CreateMaterial)
		materials.GET("/project/:projectId", r.handler.ListMaterialsByProject)
		materials.PUT("/:id", r.handler.UpdateMaterial)
		materials.DELETE("/:id", r.handler.DeleteMaterial)
	}
}
