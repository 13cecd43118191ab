package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/catalog"
	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type ProjectHandler struct {
	store   *store.EntityStore
	catalog *catalog.Catalog
}

func NewProjectHandler(entityStore *store.EntityStore, cat *catalog.Catalog) *ProjectHandler {
	return &ProjectHandler{store: entityStore, catalog: cat}
}

type CreateProjectRequest struct {
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Budget       float64 `json:"budget"`
	TargetBudget float64 `json:"targetBudget"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Status       string  `json:"status"`
}

// CreateProject handles POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddProject(c.Request.Context(), store.ProjectIntent{
		UserID:       currentUserID(c),
		Title:        req.Title,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Budget:       req.Budget,
		TargetBudget: req.TargetBudget,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       req.Status,
	})
	respondSave(c, res, err, "project")
}

// ListProjects handles GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects := h.store.GetProjects(c.Request.Context())
	responses.Success(c, http.StatusOK, projects, "Projects retrieved successfully")
}

// GetProject handles GET /api/v1/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project := h.store.GetProjectByID(c.Request.Context(), c.Param("id"))
	if project == nil {
		responses.Fail(c, http.StatusNotFound, nil, "Project not found")
		return
	}
	responses.Success(c, http.StatusOK, project, "Project retrieved successfully")
}

// UpdateProject handles PUT /api/v1/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdateProject(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "project")
}

// DeleteProject handles DELETE /api/v1/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ok := h.store.DeleteProject(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "project")
}

// ListTemplates handles GET /api/v1/projects/templates
func (h *ProjectHandler) ListTemplates(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.catalog.Templates(), "Templates retrieved successfully")
}

// ListIdeas handles GET /api/v1/projects/ideas?type=<project type>
func (h *ProjectHandler) ListIdeas(c *gin.Context) {
	ideas := h.catalog.IdeasFor(c.Query("type"))
	responses.Success(c, http.StatusOK, ideas, "Design ideas retrieved successfully")
}
