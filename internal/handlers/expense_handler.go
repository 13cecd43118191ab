package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

type ExpenseHandler struct {
	store *store.EntityStore
}

func NewExpenseHandler(entityStore *store.EntityStore) *ExpenseHandler {
	return &ExpenseHandler{store: entityStore}
}

type CreateExpenseRequest struct {
	ProjectID   string  `json:"projectId"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	PurchasedAt string  `json:"purchasedAt"`
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	res, err := h.store.AddExpense(c.Request.Context(), store.ExpenseIntent{
		UserID:      currentUserID(c),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		PurchasedAt: req.PurchasedAt,
	})
	respondSave(c, res, err, "expense")
}

// ListExpensesByProject handles GET /api/v1/expenses/project/:projectId
func (h *ExpenseHandler) ListExpensesByProject(c *gin.Context) {
	expenses := h.store.GetExpensesByProject(c.Request.Context(), c.Param("projectId"))
	responses.Success(c, http.StatusOK, expenses, "Expenses retrieved successfully")
}

// UpdateExpense handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	res, err := h.store.UpdateExpense(c.Request.Context(), c.Param("id"), patch)
	respondUpdate(c, res, err, "expense")
}

// DeleteExpense handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	ok := h.store.DeleteExpense(c.Request.Context(), c.Param("id"))
	respondDelete(c, ok, "expense")
}
