package store

import (
	"context"
	"strings"
)

func (s *EntityStore) GetPermitsByProject(ctx context.Context, projectID string) []Record {
	remote := s.byProject(ctx, KindPermit, projectID)
	return append(s.localByProject(ctx, KindPermit, projectID), remote...)
}

func (s *EntityStore) AddPermit(ctx context.Context, in PermitIntent) (*Result, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.ProjectID == "" || in.Name == "" {
		return nil, ErrInvalidInput
	}
	in.Status = lowerOr(in.Status, "pending")

	created, err := s.tryInsert(ctx, KindPermit, expandShapes(permitShapes(in), in.UserID != ""))
	if err == nil {
		return &Result{Record: created, Source: SourceRemote}, nil
	}

	fallback := s.localFallback(ctx, KindPermit, Record{
		"project_id":    in.ProjectID,
		"name":          in.Name,
		"status":        in.Status,
		"approval_date": orNil(in.ApprovalDate),
		"deadline":      orNil(in.Deadline),
	})
	return &Result{Record: fallback, Source: SourceLocal}, nil
}

func (s *EntityStore) UpdatePermit(ctx context.Context, id string, patch Record) (*Result, error) {
	if KindPermit.IsLocalID(id) {
		if updated := s.localUpdate(ctx, KindPermit, id, patch); updated != nil {
			return &Result{Record: updated, Source: SourceLocal}, nil
		}
		return nil, ErrExhausted
	}

	updated, err := s.remote.Update(ctx, KindPermit.Table(), id, normalizePermitPatch(patch))
	if err != nil {
		s.logUpdateFailure(KindPermit, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeletePermit(ctx context.Context, id string) bool {
	if KindPermit.IsLocalID(id) {
		s.localDelete(ctx, KindPermit, id)
		return true
	}

	err := s.remote.Delete(ctx, KindPermit.Table(), id)
	if err == nil {
		return true
	}
	s.logDeleteFailure(KindPermit, id, err)

	s.localDelete(ctx, KindPermit, id)
	return false
}
