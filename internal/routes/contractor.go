package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type ContractorRoutes struct {
	handler *handlers.ContractorHandler
}

func NewContractorRoutes(handler *handlers.ContractorHandler) *ContractorRoutes {
	return &ContractorRoutes{handler: handler}
}

func (r *ContractorRoutes) RegisterRoutes(router *gin.RouterGroup) {
	contractors := router.Group("/contractors")
	contractors.Use(middlewares.Authenticate)
	{
		contractors.POST("", r.handler.CreateContractor)
		contractors.GET("/project/:projectId", r.handler.ListContractorsByProject)
		contractors.PUT("/:id", r.handler.UpdateContractor)
		contractors.DELETE("/:id", r.handler.DeleteContractor)
	}
}
