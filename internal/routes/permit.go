package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type PermitRoutes struct {
	handler *handlers.PermitHandler
}

func NewPermitRoutes(handler *handlers.PermitHandler) *PermitRoutes {
	return &PermitRoutes{handler: handler}
}

func (r *PermitRoutes) RegisterRoutes(router *gin.RouterGroup) {
	permits := router.Group("/permits")
	permits.Use(middlewares.Authenticate)
	{
		permits.POST("", r.handler.CreatePermit)
		permits.GET("/project/:projectId", r.handler.ListPermitsByProject)
		permits.PUT("/:id", r.handler.UpdatePermit)
		permits.DELETE("/:id", r.handler.DeletePermit)
	}
}
