package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type DashboardHandler struct {
	store *store.EntityStore
}

func NewDashboardHandler(entityStore *store.EntityStore) *DashboardHandler {
	return &DashboardHandler{store: entityStore}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snapshot := h.store.GetDashboardSnapshot(c.Request.Context())
	responses.Success(c, http.StatusOK, snapshot, "Dashboard retrieved successfully")
}

// GetReports handles GET /api/v1/reports
func (h *DashboardHandler) GetReports(c *gin.Context) {
	reports := h.store.GetReports(c.Request.Context())
	responses.Success(c, http.StatusOK, reports, "Reports retrieved successfully")
}
