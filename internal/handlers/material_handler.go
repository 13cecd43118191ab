package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type MaterialHandler struct {
	store *store.EntityStore
}

func NewMaterialHandler(entityStore *store.EntityStore) *MaterialHandler {
	return &MaterialHandler{store: entityStore}
}

type CreateMaterialRequest struct {
	ProjectID string  `json:"projectId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitCost  float64 `json:"unitCost"`
	Purchased bool    `json:"purchased"`
}

// CreateMaterial handles POST /api/v1/materials
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddMaterial(c.Request.Context(), store.MaterialIntent{
		UserID:    currentUserID(c),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitCost:  req.UnitCost,
		Purchased: req.Purchased,
	})
	respondSave(c, res, err, "material")
}

// ListMaterialsByProject handles GET /api/v1/materials/project/:projectId
func (h *MaterialHandler) ListMaterialsByProject(c *gin.Context) {
	materials := h.store.GetMaterialsByProject(c.Request.Context(), c.Param("projectId"))
	responses.Success(c, http.StatusOK, materials, "Materials retrieved successfully")
}

// UpdateMaterial handles PUT /api/v1/materials/:id
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdateMaterial(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "material")
}

// DeleteMaterial handles DELETE /api/v1/materials/:id
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	ok := h.store.DeleteMaterial(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "material")
}
