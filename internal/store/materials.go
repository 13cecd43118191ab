package store

import (
	"context"
	"strings"
)

const entityMaterials = "materials"

func (s *EntityStore) GetMaterialsByProject(ctx context.Context, projectID string) []Record {
	if rows, ok := s.backendList(ctx, "materials.getByProject", func(ctx context.Context) ([]Record, error) {
		return s.backend.ListByProject(ctx, entityMaterials, projectID)
	}); ok {
		return rows
	}
	return s.byProject(ctx, KindMaterial, projectID)
}

// AddMaterial creates a material line item. Quantity defaults to 1; there is
// no local fallback for materials, so remote exhaustion surfaces directly.
func (s *EntityStore) AddMaterial(ctx context.Context, in MaterialIntent) (*Result, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.ProjectID == "" || in.Name == "" {
		return nil, ErrInvalidInput
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	if rec := s.backendCall(ctx, "materials.add", func(ctx context.Context) (Record, error) {
		return s.backend.Create(ctx, entityMaterials, Record{
			"project_id": in.ProjectID,
			"name":       in.Name,
			"quantity":   in.Quantity,
			"unit_cost":  in.UnitCost,
			"purchased":  in.Purchased,
		})
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	created, err := s.tryInsert(ctx, KindMaterial, expandShapes(materialShapes(in), in.UserID != ""))
	if err != nil {
		return nil, err
	}
	return &Result{Record: created, Source: SourceRemote}, nil
}

func (s *EntityStore) UpdateMaterial(ctx context.Context, id string, patch Record) (*Result, error) {
	if rec := s.backendCall(ctx, "materials.update", func(ctx context.Context) (Record, error) {
		return s.backend.Update(ctx, entityMaterials, id, patch)
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	updated, err := s.remote.Update(ctx, KindMaterial.Table(), id, patch)
	if err != nil {
		s.logUpdateFailure(KindMaterial, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeleteMaterial(ctx context.Context, id string) bool {
	if s.backendDelete(ctx, "materials.delete", entityMaterials, id) {
		return true
	}
	if err := s.remote.Delete(ctx, KindMaterial.Table(), id); err != nil {
		s.logDeleteFailure(KindMaterial, id, err)
		return false
	}
	return true
}
