package store

import (
	"context"
	"strings"
)

const entityTasks = "tasks"

// GetTasksByProject lists a project's tasks with the read-path aliases
// (dueDate, assignedTo) resolved across the known column spellings.
func (s *EntityStore) GetTasksByProject(ctx context.Context, projectID string) []Record {
	rows, ok := s.backendList(ctx, "tasks.getByProject", func(ctx context.Context) ([]Record, error) {
		return s.backend.ListByProject(ctx, entityTasks, projectID)
	})
	if !ok {
		rows = s.byProject(ctx, KindTask, projectID)
	}

	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = decorateTask(r)
	}
	return out
}

// AddTask creates a task. Status defaults to pending and priority to medium.
func (s *EntityStore) AddTask(ctx context.Context, in TaskIntent) (*Result, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.ProjectID == "" || in.Title == "" {
		return nil, ErrInvalidInput
	}
	in.Priority = lowerOr(in.Priority, "medium")
	in.Status = lowerOr(in.Status, "pending")

	if rec := s.backendCall(ctx, "tasks.add", func(ctx context.Context) (Record, error) {
		return s.backend.Create(ctx, entityTasks, Record{
			"project_id":  in.ProjectID,
			"title":       in.Title,
			"description": in.Title,
			"priority":    in.Priority,
			"assigned_to": orNil(in.AssignedTo),
			"deadline":    orNil(in.DueDate),
			"status":      in.Status,
		})
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	created, err := s.tryInsert(ctx, KindTask, expandShapes(taskShapes(in), in.UserID != ""))
	if err != nil {
		return nil, err
	}
	return &Result{Record: created, Source: SourceRemote}, nil
}

// UpdateTask patches a task. When the canonical naming (deadline) is
// rejected, it retries once with the alternate column convention (due_date)
// before giving up.
func (s *EntityStore) UpdateTask(ctx context.Context, id string, patch Record) (*Result, error) {
	normalized := normalizeTaskPatch(patch)

	if rec := s.backendCall(ctx, "tasks.update", func(ctx context.Context) (Record, error) {
		return s.backend.Update(ctx, entityTasks, id, normalized)
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	updated, err := s.remote.Update(ctx, KindTask.Table(), id, normalized)
	if err == nil {
		return &Result{Record: updated, Source: SourceRemote}, nil
	}
	s.logUpdateFailure(KindTask, id, err)

	updated, err = s.remote.Update(ctx, KindTask.Table(), id, taskPatchAlternate(patch))
	if err != nil {
		s.logUpdateFailure(KindTask, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeleteTask(ctx context.Context, id string) bool {
	if s.backendDelete(ctx, "tasks.delete", entityTasks, id) {
		return true
	}
	if err := s.remote.Delete(ctx, KindTask.Table(), id); err != nil {
		s.logDeleteFailure(KindTask, id, err)
		return false
	}
	return true
}
