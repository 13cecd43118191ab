package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type ContractorHandler struct {
	store *store.EntityStore
}

func NewContractorHandler(entityStore *store.EntityStore) *ContractorHandler {
	return &ContractorHandler{store: entityStore}
}

type CreateContractorRequest struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
}

// CreateContractor handles POST /api/v1/contractors
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddContractor(c.Request.Context(), store.ContractorIntent{
		UserID:    currentUserID(c),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
	})
	respondSave(c, res, err, "contractor")
}

// ListContractorsByProject handles GET /api/v1/contractors/project/:projectId
func (h *ContractorHandler) ListContractorsByProject(c *gin.Context) {
	contractors := h.store.GetContractorsByProject(c.Request.Context(), c.Param("projectId"))
	responses.Success(c, http.StatusOK, contractors, "Contractors retrieved successfully")
}

// UpdateContractor handles PUT /api/v1/contractors/:id
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdateContractor(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "contractor")
}

// DeleteContractor handles DELETE /api/v1/contractors/:id
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	ok := h.store.DeleteContractor(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "contractor")
}
