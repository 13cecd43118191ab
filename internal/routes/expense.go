package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type ExpenseRoutes struct {
	handler *handlers.ExpenseHandler
}

func NewExpenseRoutes(handler *handlers.ExpenseHandler) *ExpenseRoutes {
	return &ExpenseRoutes{handler: handler}
}

func (r *ExpenseRoutes) RegisterRoutes(router *gin.RouterGroup) {
	expenses := router.Group("/expenses")
	expenses.Use(middlewares.Authenticate)
	{
		expenses.POST("", r.handler.CreateExpense)
		expenses.GET("/project/:projectId", r.handler.ListExpensesByProject)
		expenses.PUT("/:id", r.handler.UpdateExpense)
		expenses.DELETE("/:id", r.handler.DeleteExpense)
	}
}
