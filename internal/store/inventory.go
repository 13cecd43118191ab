package store

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// GetInventory lists the full inventory, global and per-project alike. When
// the remote list fails the local collection still serves the session.
func (s *EntityStore) GetInventory(ctx context.Context) []Record {
	local := s.local.Read(ctx, KindInventory)

	remote, err := s.remote.SelectAllOrdered(ctx, KindInventory.Table(), "created_at")
	if err != nil {
		s.log.Error("inventory list failed", zap.Error(err))
		return local
	}
	return append(local, remote...)
}

func (s *EntityStore) GetInventoryByProject(ctx context.Context, projectID string) []Record {
	remote := s.byProject(ctx, KindInventory, projectID)
	return append(s.localByProject(ctx, KindInventory, projectID), remote...)
}

// AddInventoryItem creates an inventory item. The project reference is
// optional; items without one belong to the global tool inventory.
func (s *EntityStore) AddInventoryItem(ctx context.Context, in InventoryIntent) (*Result, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrInvalidInput
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	created, err := s.tryInsert(ctx, KindInventory, expandShapes(inventoryShapes(in), in.UserID != ""))
	if err == nil {
		return &Result{Record: created, Source: SourceRemote}, nil
	}

	fallback := s.localFallback(ctx, KindInventory, Record{
		"project_id": orNil(in.ProjectID),
		"name":       in.Name,
		"quantity":   in.Quantity,
		"used":       false,
	})
	return &Result{Record: fallback, Source: SourceLocal}, nil
}

func (s *EntityStore) UpdateInventoryItem(ctx context.Context, id string, patch Record) (*Result, error) {
	if KindInventory.IsLocalID(id) {
		if updated := s.localUpdate(ctx, KindInventory, id, patch); updated != nil {
			return &Result{Record: updated, Source: SourceLocal}, nil
		}
		return nil, ErrExhausted
	}

	updated, err := s.remote.Update(ctx, KindInventory.Table(), id, patch)
	if err != nil {
		s.logUpdateFailure(KindInventory, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeleteInventoryItem(ctx context.Context, id string) bool {
	if KindInventory.IsLocalID(id) {
		s.localDelete(ctx, KindInventory, id)
		return true
	}

	err := s.remote.Delete(ctx, KindInventory.Table(), id)
	if err == nil {
		return true
	}
	s.logDeleteFailure(KindInventory, id, err)

	s.localDelete(ctx, KindInventory, id)
	return false
}
