package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"renovatrack/internal/catalog"
	"renovatrack/internal/handlers"
	"renovatrack/internal/routes"
	"renovatrack/internal/store"
	"renovatrack/internal/utils"
)

type stubRemote struct {
	insert   func(table string, row store.Record) (store.Record, error)
	selectEq func(table, column string, value any) ([]store.Record, error)
}

func (s *stubRemote) Insert(_ context.Context, table string, row store.Record) (store.Record, error) {
	if s.insert == nil {
		return nil, fmt.Errorf("unexpected insert into %s", table)
	}
	return s.insert(table, row)
}

func (s *stubRemote) SelectEq(_ context.Context, table, column string, value any) ([]store.Record, error) {
	if s.selectEq == nil {
		return nil, fmt.Errorf("unexpected select from %s", table)
	}
	return s.selectEq(table, column, value)
}

func (s *stubRemote) SelectAll(_ context.Context, table string) ([]store.Record, error) {
	return nil, fmt.Errorf("unexpected select from %s", table)
}

func (s *stubRemote) SelectAllOrdered(_ context.Context, table, _ string) ([]store.Record, error) {
	return nil, fmt.Errorf("unexpected ordered select from %s", table)
}

func (s *stubRemote) Update(_ context.Context, table, _ string, _ store.Record) (store.Record, error) {
	return nil, fmt.Errorf("unexpected update of %s", table)
}

func (s *stubRemote) Delete(_ context.Context, table, _ string) error {
	return fmt.Errorf("unexpected delete from %s", table)
}

type stubLocal struct {
	data map[store.Kind][]store.Record
}

func (l *stubLocal) Read(_ context.Context, kind store.Kind) []store.Record {
	return append([]store.Record(nil), l.data[kind]...)
}

func (l *stubLocal) Write(_ context.Context, kind store.Kind, rows []store.Record) {
	l.data[kind] = rows
}

func newTestRouter(t *testing.T, remote store.RemoteStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load("")
	require.NoError(t, err)

	s := store.New(remote, &stubLocal{data: make(map[store.Kind][]store.Record)}, nil, zap.NewNop())

	router := gin.New()
	routes.RegisterRoutes(router, routes.Handlers{
		Projects:    handlers.NewProjectHandler(s, cat),
		Tasks:       handlers.NewTaskHandler(s),
		Expenses:    handlers.NewExpenseHandler(s),
		Photos:      handlers.NewPhotoHandler(s),
		Materials:   handlers.NewMaterialHandler(s),
		Contractors: handlers.NewContractorHandler(s),
		Permits:     handlers.NewPermitHandler(s),
		Inventory:   handlers.NewInventoryHandler(s),
		Maintenance: handlers.NewMaintenanceHandler(s),
		Dashboard:   handlers.NewDashboardHandler(s),
	})
	return router
}

func authHeader(t *testing.T) string {
	t.Helper()
	utils.AccessTokenSecret = []byte("test-secret")
	token, err := utils.GenerateAccessToken("user-1", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router *gin.Engine, method, path, auth string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProjectRequiresAuth(t *testing.T) {
	router := newTestRouter(t, &stubRemote{})

	w := doJSON(router, http.MethodPost, "/api/v1/projects", "", map[string]any{"title": "Kitchen"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProject(t *testing.T) {
	remote := &stubRemote{
		insert: func(_ string, row store.Record) (store.Record, error) {
			created := make(store.Record, len(row)+1)
			for k, v := range row {
				created[k] = v
			}
			created["id"] = "p1"
			return created, nil
		},
	}
	router := newTestRouter(t, remote)

	w := doJSON(router, http.MethodPost, "/api/v1/projects", authHeader(t), map[string]any{
		"title":        "Kitchen refresh",
		"targetBudget": 15000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string       `json:"status"`
		Data   store.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "p1", resp.Data["id"])
	assert.Equal(t, "Kitchen refresh", resp.Data["title"])
	assert.Equal(t, float64(15000), resp.Data["budget"])
	assert.Equal(t, "user-1", resp.Data["user_id"])
}

func TestCreateProjectInvalidPayload(t *testing.T) {
	router := newTestRouter(t, &stubRemote{})

	w := doJSON(router, http.MethodPost, "/api/v1/projects", authHeader(t), map[string]any{
		"description": "no title at all",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePhotoSavedLocally(t *testing.T) {
	remote := &stubRemote{
		insert: func(_ string, _ store.Record) (store.Record, error) {
			return nil, fmt.Errorf("table unavailable")
		},
	}
	router := newTestRouter(t, remote)

	w := doJSON(router, http.MethodPost, "/api/v1/photos", authHeader(t), map[string]any{
		"projectId": "p1",
		"url":       "https://cdn/x.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string       `json:"message"`
		Data    store.Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "saved locally")
	assert.True(t, strings.HasPrefix(store.RecordID(resp.Data), "local-photo-"))
	assert.Equal(t, true, resp.Data["_local"])
}

func TestListTemplates(t *testing.T) {
	router := newTestRouter(t, &stubRemote{})

	w := doJSON(router, http.MethodGet, "/api/v1/projects/templates", authHeader(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []catalog.Template `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 14)
	assert.Equal(t, "kitchen-remodel", resp.Data[0].ID)
}

func TestListIdeasByType(t *testing.T) {
	router := newTestRouter(t, &stubRemote{})

	w := doJSON(router, http.MethodGet, "/api/v1/projects/ideas?type=Kitchen+Remodel", authHeader(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Use under-cabinet lighting.", resp.Data[0])
}
