package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type TaskHandler struct {
	store *store.EntityStore
}

func NewTaskHandler(entityStore *store.EntityStore) *TaskHandler {
	return &TaskHandler{store: entityStore}
}

type CreateTaskRequest struct {
	ProjectID  string `json:"projectId"`
	Title      string `json:"title"`
	Priority   string `json:"priority"`
	AssignedTo string `json:"assignedTo"`
	DueDate    string `json:"dueDate"`
	Status     string `json:"status"`
}

// CreateTask handles POST /api/v1/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddTask(c.Request.Context(), store.TaskIntent{
		UserID:     currentUserID(c),
		ProjectID:  req.ProjectID,
		Title:      req.Title,
		Priority:   req.Priority,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
		Status:     req.Status,
	})
	respondSave(c, res, err, "task")
}

// ListTasksByProject handles GET /api/v1/tasks/project/:projectId
func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	tasks := h.store.GetTasksByProject(c.Request.Context(), c.Param("projectId"))
	responses.Success(c, http.StatusOK, tasks, "Tasks retrieved successfully")
}

// UpdateTask handles PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdateTask(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "task")
}

// DeleteTask handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ok := h.store.DeleteTask(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "task")
}
