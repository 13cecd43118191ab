// Package backend implements the optional alternate REST backend client.
// When enabled it is consulted before the remote store; it accepts canonical
// payloads directly, so no shape negotiation happens on this path.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
		log:  log,
	}
}

// List fetches GET /<entity>.
func (c *Client) List(ctx context.Context, entity string) ([]map[string]any, error) {
	return c.list(ctx, "/"+entity)
}

// ListByProject fetches GET /<entity>/project/<id>.
func (c *Client) ListByProject(ctx context.Context, entity, projectID string) ([]map[string]any, error) {
	return c.list(ctx, fmt.Sprintf("/%s/project/%s", entity, projectID))
}

// Get fetches GET /<entity>/<id>.
func (c *Client) Get(ctx context.Context, entity, id string) (map[string]any, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/%s", entity, id), nil)
	if err != nil {
		return nil, err
	}
	var rec map[string]any
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", entity, err)
	}
	return rec, nil
}

// Create posts the canonical payload and unwraps the singular entity key of
// the response ({"project": {...}} for /projects).
func (c *Client) Create(ctx context.Context, entity string, payload map[string]any) (map[string]any, error) {
	body, err := c.do(ctx, http.MethodPost, "/"+entity, payload)
	if err != nil {
		return nil, err
	}
	return unwrap(entity, body)
}

// Update puts the patch and unwraps the singular entity key.
func (c *Client) Update(ctx context.Context, entity, id string, patch map[string]any) (map[string]any, error) {
	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/%s/%s", entity, id), patch)
	if err != nil {
		return nil, err
	}
	return unwrap(entity, body)
}

func (c *Client) Delete(ctx context.Context, entity, id string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%s", entity, id), nil)
	return err
}

func (c *Client) list(ctx context.Context, path string) ([]map[string]any, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rows, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, truncate(data))
	}
	return data, nil
}

// unwrap resolves the singular entity key from a create/update response.
// A response without the expected key is an error so the caller falls
// through to the remote store instead of treating it as saved.
func unwrap(entity string, body []byte) (map[string]any, error) {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", entity, err)
	}

	singular := strings.TrimSuffix(entity, "s")
	if rec, ok := envelope[singular].(map[string]any); ok {
		return rec, nil
	}
	return nil, fmt.Errorf("%s response missing %q key", entity, singular)
}

func truncate(data []byte) string {
	const max = 200
	s := string(data)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
