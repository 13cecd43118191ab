package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type InventoryHandler struct {
	store *store.EntityStore
}

func NewInventoryHandler(entityStore *store.EntityStore) *InventoryHandler {
	return &InventoryHandler{store: entityStore}
}

type CreateInventoryRequest struct {
	ProjectID string  `json:"projectId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
}

// CreateInventoryItem handles POST /api/v1/inventory
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddInventoryItem(c.Request.Context(), store.InventoryIntent{
		UserID:    currentUserID(c),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Quantity:  req.Quantity,
	})
	respondSave(c, res, err, "inventory item")
}

// ListInventory handles GET /api/v1/inventory
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items := h.store.GetInventory(c.Request.Context())
	responses.Success(c, http.StatusOK, items, "Inventory retrieved successfully")
}

// ListInventoryByProject handles GET /api/v1/inventory/project/:projectId
func (h *InventoryHandler) ListInventoryByProject(c *gin.Context) {
	items := h.store.GetInventoryByProject(c.Request.Context(), c.Param("projectId"))
	responses.Success(c, http.StatusOK, items, "Inventory retrieved successfully")
}

// UpdateInventoryItem handles PUT /api/v1/inventory/:id
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdateInventoryItem(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "inventory item")
}

// DeleteInventoryItem handles DELETE /api/v1/inventory/:id
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	ok := h.store.DeleteInventoryItem(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "inventory item")
}
