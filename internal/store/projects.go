package store

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const entityProjects = "projects"

// GetProjects lists all projects, newest first.
func (s *EntityStore) GetProjects(ctx context.Context) []Record {
	if rows, ok := s.backendList(ctx, "projects.get", func(ctx context.Context) ([]Record, error) {
		return s.backend.List(ctx, entityProjects)
	}); ok {
		return rows
	}

	rows, err := s.remote.SelectAllOrdered(ctx, KindProject.Table(), "created_at")
	if err != nil {
		s.log.Error("projects list failed", zap.Error(err))
		return nil
	}
	return rows
}

func (s *EntityStore) GetProjectByID(ctx context.Context, id string) Record {
	if rec := s.backendCall(ctx, "projects.getById", func(ctx context.Context) (Record, error) {
		return s.backend.Get(ctx, entityProjects, id)
	}); rec != nil {
		return rec
	}

	rows, err := s.remote.SelectEq(ctx, KindProject.Table(), "id", id)
	if err != nil || len(rows) == 0 {
		if err != nil {
			s.log.Error("project lookup failed", zap.String("id", id), zap.Error(err))
		}
		return nil
	}
	return rows[0]
}

// AddProject creates a project. An authenticated user and a non-empty title
// (name is accepted as an alias) are required; invalid input fails fast with
// no remote attempt.
func (s *EntityStore) AddProject(ctx context.Context, in ProjectIntent) (*Result, error) {
	if in.UserID == "" {
		return nil, ErrInvalidInput
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = strings.TrimSpace(in.Name)
	}
	if title == "" {
		return nil, ErrInvalidInput
	}

	budget := in.Budget
	if budget == 0 {
		budget = in.TargetBudget
	}
	status := lowerOr(in.Status, "planning")

	shapes := projectShapes(in.UserID, title, in.Description, in.Location, budget, in.StartDate, in.EndDate, status)
	candidates := expandShapes(shapes, true)

	if rec := s.backendCall(ctx, "projects.add", func(ctx context.Context) (Record, error) {
		return s.backend.Create(ctx, entityProjects, candidates[0])
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	created, err := s.tryInsert(ctx, KindProject, candidates)
	if err != nil {
		return nil, err
	}
	return &Result{Record: created, Source: SourceRemote}, nil
}

func (s *EntityStore) UpdateProject(ctx context.Context, id string, patch Record) (*Result, error) {
	normalized := normalizeProjectPatch(patch)

	if rec := s.backendCall(ctx, "projects.update", func(ctx context.Context) (Record, error) {
		return s.backend.Update(ctx, entityProjects, id, normalized)
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	updated, err := s.remote.Update(ctx, KindProject.Table(), id, normalized)
	if err != nil {
		s.logUpdateFailure(KindProject, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeleteProject(ctx context.Context, id string) bool {
	if s.backendDelete(ctx, "projects.delete", entityProjects, id) {
		return true
	}
	if err := s.remote.Delete(ctx, KindProject.Table(), id); err != nil {
		s.logDeleteFailure(KindProject, id, err)
		return false
	}
	return true
}

func (s *EntityStore) logUpdateFailure(kind Kind, id string, err error) {
	d := diagnose(err)
	s.log.Error("update failed",
		zap.String("table", kind.Table()),
		zap.String("id", id),
		zap.String("code", d.Code),
		zap.String("message", d.Message),
	)
}

func (s *EntityStore) logDeleteFailure(kind Kind, id string, err error) {
	s.log.Error("delete failed",
		zap.String("table", kind.Table()),
		zap.String("id", id),
		zap.Error(err),
	)
}

func lowerOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return strings.ToLower(v)
}
