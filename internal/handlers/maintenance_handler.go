package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type MaintenanceHandler struct {
	store *store.EntityStore
}

func NewMaintenanceHandler(entityStore *store.EntityStore) *MaintenanceHandler {
	return &MaintenanceHandler{store: entityStore}
}

type CreateMaintenanceRequest struct {
	Title     string `json:"title"`
	DueDate   string `json:"dueDate"`
	Frequency string `json:"frequency"`
	Status    string `json:"status"`
}

// CreateMaintenanceTask handles POST /api/v1/maintenance
func (h *MaintenanceHandler) CreateMaintenanceTask(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddMaintenanceTask(c.Request.Context(), store.MaintenanceIntent{
		UserID:    currentUserID(c),
		Title:     req.Title,
		DueDate:   req.DueDate,
		Frequency: req.Frequency,
		Status:    req.Status,
	})
	respondSave(c, res, err, "maintenance task")
}

// ListMaintenanceTasks handles GET /api/v1/maintenance
func (h *MaintenanceHandler) ListMaintenanceTasks(c *gin.Context) {
	tasks := h.store.GetMaintenanceTasks(c.Request.Context())
	responses.Success(c, http.StatusOK, tasks, "Maintenance tasks retrieved successfully")
}

// UpdateMaintenanceTask handles PUT /api/v1/maintenance/:id
func (h *MaintenanceHandler) UpdateMaintenanceTask(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdateMaintenanceTask(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "maintenance task")
}

// DeleteMaintenanceTask handles DELETE /api/v1/maintenance/:id
func (h *MaintenanceHandler) DeleteMaintenanceTask(c *gin.Context) {
	ok := h.store.DeleteMaintenanceTask(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "maintenance task")
}
