package routes

import (
	"renovatrack/internal/handlers"
	"renovatrack/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type TaskRoutes struct {
	handler *handlers.TaskHandler
}

func NewTaskRoutes(handler *handlers.TaskHandler) *TaskRoutes {
	return &TaskRoutes{handler: handler}
}

func (r *TaskRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	tasks.Use(middlewares.Authenticate)
	{
		tasks.POST("", r.handler.CreateTask)
		tasks.GET("/project/:projectId", r.handler.ListTasksByProject)
		tasks.PUT("/:id", r.handler.UpdateTask)
		tasks.DELETE("/:id", r.handler.DeleteTask)
	}
}
