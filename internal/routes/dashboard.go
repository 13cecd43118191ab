package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type DashboardRoutes struct {
	handler *handlers.DashboardHandler
}

func NewDashboardRoutes(handler *handlers.DashboardHandler) *DashboardRoutes {
	return &DashboardRoutes{handler: handler}
}

func (r *DashboardRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", middlewares.Authenticate, r.handler.GetDashboard)
	router.GET("/reports", middlewares.Authenticate, r.handler.GetReports)
}
