package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type PhotoHandler struct {
	store *store.EntityStore
}

func NewPhotoHandler(entityStore *store.EntityStore) *PhotoHandler {
	return &PhotoHandler{store: entityStore}
}

type CreatePhotoRequest struct {
	ProjectID string `json:"projectId"`
	URL       string `json:"url"`
	Stage     string `json:"stage"`
}

// CreatePhoto handles POST /api/v1/photos
func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	var req CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddPhoto(c.Request.Context(), store.PhotoIntent{
		UserID:    currentUserID(c),
		ProjectID: req.ProjectID,
		URL:       req.URL,
		Stage:     req.Stage,
	})
	respondSave(c, res, err, "photo")
}

// ListPhotosByProject handles GET /api/v1/photos/project/:projectId
func (h *PhotoHandler) ListPhotosByProject(c *gin.Context) {
	photos := h.store.GetPhotosByProject(c.Request.Context(), c.Param("projectId"))
	responses.Success(c, http.StatusOK, photos, "Photos retrieved successfully")
}

// UpdatePhoto handles PUT /api/v1/photos/:id
func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdatePhoto(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "photo")
}

// DeletePhoto handles DELETE /api/v1/photos/:id
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	ok := h.store.DeletePhoto(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "photo")
}
