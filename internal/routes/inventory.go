package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type InventoryRoutes struct {
	handler *handlers.InventoryHandler
}

func NewInventoryRoutes(handler *handlers.InventoryHandler) *InventoryRoutes {
	return &InventoryRoutes{handler: handler}
}

func (r *InventoryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	inventory.Use(middlewares.Authenticate)
	{
		inventory.POST("", r.handler.CreateInventoryItem)
		inventory.GET("", r.handler.ListInventory)
		inventory.GET("/project/:projectId", r.handler.ListInventoryByProject)
		inventory.PUT("/:id", r.handler.UpdateInventoryItem)
		inventory.DELETE("/:id", r.handler.DeleteInventoryItem)
	}
}
