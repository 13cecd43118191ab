package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type MaintenanceRoutes struct {
	handler *handlers.MaintenanceHandler
}

func NewMaintenanceRoutes(handler *handlers.MaintenanceHandler) *MaintenanceRoutes {
	return &MaintenanceRoutes{handler: handler}
}

func (r *MaintenanceRoutes) RegisterRoutes(router *gin.RouterGroup) {
	maintenance := router.Group("/maintenance")
	maintenance.Use(middlewares.Authenticate)
	{
		maintenance.POST("", r.handler.CreateMaintenanceTask)
		maintenance.GET("", r.handler.ListMaintenanceTasks)
		maintenance.PUT("/:id", r.handler.UpdateMaintenanceTask)
		maintenance.DELETE("/:id", r.handler.DeleteMaintenanceTask)
	}
}
