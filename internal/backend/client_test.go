package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateUnwrapsSingularKey(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"project": map[string]any{"id": "p1", "title": "Kitchen"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	rec, err := c.Create(context.Background(), "projects", map[string]any{"title": "Kitchen"})
	require.NoError(t, err)
	assert.Equal(t, "/projects", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Kitchen", gotBody["title"])
	assert.Equal(t, "p1", rec["id"])
}

func TestCreateMissingEntityKeyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	_, err := c.Create(context.Background(), "projects", map[string]any{"title": "Kitchen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "project" key`)
}

func TestListByProjectPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks/project/p1", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "t1"}, {"id": "t2"}})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	rows, err := c.ListByProject(context.Background(), "tasks", "p1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "t1", rows[0]["id"])
}

func TestErrorStatusSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "project not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	_, err := c.Get(context.Background(), "projects", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "project not found")
}

func TestDelete(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	require.NoError(t, c.Delete(context.Background(), "photos", "ph1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", zap.NewNop())
	_, err := c.List(context.Background(), "projects")
	require.NoError(t, err)
}
