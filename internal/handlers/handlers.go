package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"renovatrack/internal/responses"
	"renovatrack/internal/store"
)

// currentUserID returns the authenticated user id set by the auth middleware,
// or empty when the request is unauthenticated.
func currentUserID(c *gin.Context) string {
	return c.GetString("userId")
}

// respondSave maps a store save outcome onto the HTTP envelope. Invalid input
// is the caller's fault; exhaustion means every backend rejected the record.
// A degraded (locally saved) record still reports success so clients never
// block on total remote failure.
func respondSave(c *gin.Context, res *store.Result, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		responses.Fail(c, http.StatusBadRequest, err, "Invalid "+entity+" payload")
	case errors.Is(err, store.ErrExhausted):
		responses.Fail(c, http.StatusBadGateway, err, "Failed to save "+entity)
	case err != nil:
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save "+entity)
	case res.Degraded():
		responses.Success(c, http.StatusCreated, res.Record, entity+" saved locally")
	default:
		responses.Success(c, http.StatusCreated, res.Record, entity+" saved")
	}
}

func respondUpdate(c *gin.Context, res *store.Result, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		responses.Fail(c, http.StatusBadRequest, err, "Invalid "+entity+" payload")
	case err != nil:
		responses.Fail(c, http.StatusBadGateway, err, "Failed to update "+entity)
	default:
		responses.Success(c, http.StatusOK, res.Record, entity+" updated")
	}
}

func respondDelete(c *gin.Context, ok bool, entity string) {
	if !ok {
		responses.Fail(c, http.StatusBadGateway, nil, "Failed to delete "+entity)
		return
	}
	responses.Success(c, http.StatusOK, nil, entity+" deleted")
}

func bindPatch(c *gin.Context) (store.Record, bool) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return nil, false
	}
	return patch, true
}
