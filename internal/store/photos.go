package store

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const entityPhotos = "photos"

// GetPhotosByProject merges local-only photos (first) with the remote rows.
func (s *EntityStore) GetPhotosByProject(ctx context.Context, projectID string) []Record {
	remote, ok := s.backendList(ctx, "photos.getByProject", func(ctx context.Context) ([]Record, error) {
		return s.backend.ListByProject(ctx, entityPhotos, projectID)
	})
	if !ok {
		remote = s.byProject(ctx, KindPhoto, projectID)
	}
	return append(s.localByProject(ctx, KindPhoto, projectID), remote...)
}

// AddPhoto persists a photo reference. When every remote candidate shape is
// rejected the photo is kept locally so the gallery stays usable while the
// remote table or its access policy is not ready.
func (s *EntityStore) AddPhoto(ctx context.Context, in PhotoIntent) (*Result, error) {
	in.URL = strings.TrimSpace(in.URL)
	in.Stage = lowerOr(in.Stage, "progress")
	if in.ProjectID == "" || in.URL == "" {
		s.log.Error("photo validation failed",
			zap.String("projectId", in.ProjectID),
			zap.String("stage", in.Stage),
		)
		return nil, ErrInvalidInput
	}

	if rec := s.backendCall(ctx, "photos.add", func(ctx context.Context) (Record, error) {
		return s.backend.Create(ctx, entityPhotos, Record{
			"project_id": in.ProjectID,
			"url":        in.URL,
			"stage":      in.Stage,
		})
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	created, err := s.tryInsert(ctx, KindPhoto, expandShapes(photoShapes(in), in.UserID != ""))
	if err == nil {
		return &Result{Record: created, Source: SourceRemote}, nil
	}

	fallback := s.localFallback(ctx, KindPhoto, Record{
		"project_id": in.ProjectID,
		"url":        in.URL,
		"stage":      in.Stage,
	})
	return &Result{Record: fallback, Source: SourceLocal}, nil
}

func (s *EntityStore) UpdatePhoto(ctx context.Context, id string, patch Record) (*Result, error) {
	if KindPhoto.IsLocalID(id) {
		if updated := s.localUpdate(ctx, KindPhoto, id, patch); updated != nil {
			return &Result{Record: updated, Source: SourceLocal}, nil
		}
		return nil, ErrExhausted
	}

	updated, err := s.remote.Update(ctx, KindPhoto.Table(), id, patch)
	if err != nil {
		s.logUpdateFailure(KindPhoto, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

// DeletePhoto removes a photo. Local-id photos never touch the remote store;
// a failed remote delete still scrubs the local cache before reporting
// failure.
func (s *EntityStore) DeletePhoto(ctx context.Context, id string) bool {
	if KindPhoto.IsLocalID(id) {
		s.localDelete(ctx, KindPhoto, id)
		return true
	}

	if s.backendDelete(ctx, "photos.delete", entityPhotos, id) {
		return true
	}

	err := s.remote.Delete(ctx, KindPhoto.Table(), id)
	if err == nil {
		return true
	}
	s.logDeleteFailure(KindPhoto, id, err)

	s.localDelete(ctx, KindPhoto, id)
	return false
}
