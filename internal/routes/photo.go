package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type PhotoRoutes struct {
	handler *handlers.PhotoHandler
}

func NewPhotoRoutes(handler *handlers.PhotoHandler) *PhotoRoutes {
	return &PhotoRoutes{handler: handler}
}

func (r *PhotoRoutes) RegisterRoutes(router *gin.RouterGroup) {
	photos := router.Group("/photos")
	photos.Use(middlewares.Authenticate)
	{
		photos.POST("", r.handler.CreatePhoto)
		photos.GET("/project/:projectId", r.handler.ListPhotosByProject)
		photos.PUT("/:id", r.handler.UpdatePhoto)
		photos.DELETE("/:id", r.handler.DeletePhoto)
	}
}
