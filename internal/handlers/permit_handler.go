package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type PermitHandler struct {
	store *store.EntityStore
}

func NewPermitHandler(entityStore *store.EntityStore) *PermitHandler {
	return &PermitHandler{store: entityStore}
}

type CreatePermitRequest struct {
	ProjectID    string `json:"projectId"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	ApprovalDate string `json:"approvalDate"`
	Deadline     string `json:"deadline"`
}

// CreatePermit handles POST /api/v1/permits
func (h *PermitHandler) CreatePermit(c *gin.Context) {
	var req CreatePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddPermit(c.Request.Context(), store.PermitIntent{
		UserID:       currentUserID(c),
		ProjectID:    req.ProjectID,
		Name:         req.Name,
		Status:       req.Status,
		ApprovalDate: req.ApprovalDate,
		Deadline:     req.Deadline,
	})
	respondSave(c, res, err, "permit")
}

// ListPermitsByProject handles GET /api/v1/permits/project/:projectId
func (h *PermitHandler) ListPermitsByProject(c *gin.Context) {
	permits := h.store.GetPermitsByProject(c.Request.Context(), c.Param("projectId"))
	responses.Success(c, http.StatusOK, permits, "Permits retrieved successfully")
}

// UpdatePermit handles PUT /api/v1/permits/:id
func (h *PermitHandler) UpdatePermit(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdatePermit(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "permit")
}

// DeletePermit handles DELETE /api/v1/permits/:id
func (h *PermitHandler) DeletePermit(c *gin.Context) {
	ok := h.store.DeletePermit(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "permit")
}
