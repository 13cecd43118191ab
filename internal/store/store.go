// Package store implements the resilient entity store: reads and writes of
// renovation-project records against a remote relational store whose exact
// column naming is not guaranteed, with an optional alternate REST backend
// consulted first and a local durable fallback for entity kinds whose remote
// write path may be unavailable.
package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"renovatrack/internal/metrics"
)

// Backend is the optional alternate REST backend. When configured it takes
// precedence over the remote store and accepts canonical payloads directly,
// bypassing shape negotiation. Any error means "fall through to the remote
// path"; the backend is never load-bearing.
type Backend interface {
	List(ctx context.Context, entity string) ([]Record, error)
	ListByProject(ctx context.Context, entity, projectID string) ([]Record, error)
	Get(ctx context.Context, entity, id string) (Record, error)
	Create(ctx context.Context, entity string, payload Record) (Record, error)
	Update(ctx context.Context, entity, id string, patch Record) (Record, error)
	Delete(ctx context.Context, entity, id string) error
}

// EntityStore exposes get/add/update/delete per entity kind. No error
// crosses its boundary for degraded-network conditions: list operations
// return empty slices, creates and updates return tagged results or the
// sentinel errors, deletes return booleans.
type EntityStore struct {
	remote  RemoteStore
	local   LocalStore
	backend Backend // nil when the alternate backend is disabled
	log     *zap.Logger
	now     func() time.Time
}

func New(remote RemoteStore, local LocalStore, backend Backend, log *zap.Logger) *EntityStore {
	return &EntityStore{
		remote:  remote,
		local:   local,
		backend: backend,
		log:     log,
		now:     time.Now,
	}
}

// backendCall runs fn when the alternate backend is enabled, swallowing its
// errors. A nil record with a nil error means "backend not consulted".
func (s *EntityStore) backendCall(ctx context.Context, op string, fn func(ctx context.Context) (Record, error)) Record {
	if s.backend == nil {
		return nil
	}
	rec, err := fn(ctx)
	if err != nil {
		metrics.RecordBackendCall(op, "error")
		s.log.Debug("alternate backend call failed", zap.String("operation", op), zap.Error(err))
		return nil
	}
	metrics.RecordBackendCall(op, "ok")
	return rec
}

func (s *EntityStore) backendList(ctx context.Context, op string, fn func(ctx context.Context) ([]Record, error)) ([]Record, bool) {
	if s.backend == nil {
		return nil, false
	}
	rows, err := fn(ctx)
	if err != nil {
		metrics.RecordBackendCall(op, "error")
		s.log.Debug("alternate backend call failed", zap.String("operation", op), zap.Error(err))
		return nil, false
	}
	metrics.RecordBackendCall(op, "ok")
	return rows, true
}

func (s *EntityStore) backendDelete(ctx context.Context, op, entity, id string) bool {
	if s.backend == nil {
		return false
	}
	if err := s.backend.Delete(ctx, entity, id); err != nil {
		metrics.RecordBackendCall(op, "error")
		s.log.Debug("alternate backend call failed", zap.String("operation", op), zap.Error(err))
		return false
	}
	metrics.RecordBackendCall(op, "ok")
	return true
}

// localFallback synthesizes a locally-owned record after remote exhaustion
// and prepends it to the kind's collection. The write is best effort; the
// returned record serves the session either way.
func (s *EntityStore) localFallback(ctx context.Context, kind Kind, rec Record) Record {
	fallback := cloneRecord(rec)
	fallback["id"] = kind.localID(s.now())
	fallback["created_at"] = s.now().UTC().Format(time.RFC3339)
	fallback["_local"] = true

	rows := append([]Record{fallback}, s.local.Read(ctx, kind)...)
	s.local.Write(ctx, kind, rows)

	metrics.RecordLocalFallback(string(kind))
	s.log.Warn("saved record locally because all remote inserts failed",
		zap.String("entity", string(kind)),
		zap.String("id", RecordID(fallback)),
	)
	return fallback
}

// localByProject returns the kind's local records belonging to a project,
// matching either foreign-key spelling.
func (s *EntityStore) localByProject(ctx context.Context, kind Kind, projectID string) []Record {
	var out []Record
	for _, r := range s.local.Read(ctx, kind) {
		if r["project_id"] == projectID || r["projectId"] == projectID {
			out = append(out, r)
		}
	}
	return out
}

func (s *EntityStore) localUpdate(ctx context.Context, kind Kind, id string, patch Record) Record {
	rows := s.local.Read(ctx, kind)
	var updated Record
	for i, r := range rows {
		if RecordID(r) != id {
			continue
		}
		merged := cloneRecord(r)
		for k, v := range patch {
			merged[k] = v
		}
		rows[i] = merged
		updated = merged
	}
	if updated != nil {
		s.local.Write(ctx, kind, rows)
	}
	return updated
}

func (s *EntityStore) localDelete(ctx context.Context, kind Kind, id string) {
	rows := s.local.Read(ctx, kind)
	kept := rows[:0]
	for _, r := range rows {
		if RecordID(r) != id {
			kept = append(kept, r)
		}
	}
	s.local.Write(ctx, kind, kept)
}
