package store

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// GetMaintenanceTasks lists maintenance tasks, local entries first. The
// ordered select is retried without the order clause for stores lacking a
// created_at column.
func (s *EntityStore) GetMaintenanceTasks(ctx context.Context) []Record {
	local := s.local.Read(ctx, KindMaintenance)

	remote, err := s.remote.SelectAllOrdered(ctx, KindMaintenance.Table(), "created_at")
	if err == nil {
		return append(local, remote...)
	}
	orderedErr := err

	remote, err = s.remote.SelectAll(ctx, KindMaintenance.Table())
	if err != nil {
		s.log.Error("maintenance list failed",
			zap.NamedError("ordered", orderedErr),
			zap.NamedError("unordered", err),
		)
		return local
	}
	return append(local, remote...)
}

// AddMaintenanceTask creates a maintenance task. Frequency defaults to
// monthly and status to pending.
func (s *EntityStore) AddMaintenanceTask(ctx context.Context, in MaintenanceIntent) (*Result, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrInvalidInput
	}
	in.Frequency = lowerOr(in.Frequency, "monthly")
	in.Status = lowerOr(in.Status, "pending")

	created, err := s.tryInsert(ctx, KindMaintenance, expandShapes(maintenanceShapes(in), in.UserID != ""))
	if err == nil {
		return &Result{Record: created, Source: SourceRemote}, nil
	}

	fallback := s.localFallback(ctx, KindMaintenance, Record{
		"title":     in.Title,
		"due_date":  orNil(in.DueDate),
		"frequency": in.Frequency,
		"status":    in.Status,
	})
	return &Result{Record: fallback, Source: SourceLocal}, nil
}

func (s *EntityStore) UpdateMaintenanceTask(ctx context.Context, id string, patch Record) (*Result, error) {
	if KindMaintenance.IsLocalID(id) {
		if updated := s.localUpdate(ctx, KindMaintenance, id, patch); updated != nil {
			return &Result{Record: updated, Source: SourceLocal}, nil
		}
		return nil, ErrExhausted
	}

	updated, err := s.remote.Update(ctx, KindMaintenance.Table(), id, patch)
	if err != nil {
		s.logUpdateFailure(KindMaintenance, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeleteMaintenanceTask(ctx context.Context, id string) bool {
	if KindMaintenance.IsLocalID(id) {
		s.localDelete(ctx, KindMaintenance, id)
		return true
	}

	if err := s.remote.Delete(ctx, KindMaintenance.Table(), id); err != nil {
		s.logDeleteFailure(KindMaintenance, id, err)
		return false
	}
	return true
}
