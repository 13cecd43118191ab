package store

import (
	"context"
	"strings"
)

// GetContractorsByProject merges local-only contractors (first) with the
// remote rows. Contractors never route through the alternate backend.
func (s *EntityStore) GetContractorsByProject(ctx context.Context, projectID string) []Record {
	remote := s.byProject(ctx, KindContractor, projectID)
	return append(s.localByProject(ctx, KindContractor, projectID), remote...)
}

func (s *EntityStore) AddContractor(ctx context.Context, in ContractorIntent) (*Result, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.ProjectID == "" || in.Name == "" {
		return nil, ErrInvalidInput
	}

	created, err := s.tryInsert(ctx, KindContractor, expandShapes(contractorShapes(in), in.UserID != ""))
	if err == nil {
		return &Result{Record: created, Source: SourceRemote}, nil
	}

	fallback := s.localFallback(ctx, KindContractor, Record{
		"project_id": in.ProjectID,
		"name":       in.Name,
		"phone":      orNil(in.Phone),
		"email":      orNil(in.Email),
		"notes":      orNil(in.Notes),
	})
	return &Result{Record: fallback, Source: SourceLocal}, nil
}

func (s *EntityStore) UpdateContractor(ctx context.Context, id string, patch Record) (*Result, error) {
	if KindContractor.IsLocalID(id) {
		if updated := s.localUpdate(ctx, KindContractor, id, patch); updated != nil {
			return &Result{Record: updated, Source: SourceLocal}, nil
		}
		return nil, ErrExhausted
	}

	updated, err := s.remote.Update(ctx, KindContractor.Table(), id, patch)
	if err != nil {
		s.logUpdateFailure(KindContractor, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeleteContractor(ctx context.Context, id string) bool {
	if KindContractor.IsLocalID(id) {
		s.localDelete(ctx, KindContractor, id)
		return true
	}

	err := s.remote.Delete(ctx, KindContractor.Table(), id)
	if err == nil {
		return true
	}
	s.logDeleteFailure(KindContractor, id, err)

	s.localDelete(ctx, KindContractor, id)
	return false
}
