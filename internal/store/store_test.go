package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dashboardRemote() *fakeRemote {
	projects := []Record{
		{"id": "p1", "title": "Kitchen", "status": "active", "budget": float64(10000)},
		{"id": "p2", "status": "completed", "budget": float64(5000)},
	}
	tasks := map[string][]Record{
		"p1": {
			{"id": "t1", "status": "pending"},
			{"id": "t2", "status": "in_progress"},
			{"id": "t3", "status": "completed"},
		},
	}
	expenses := map[string][]Record{
		"p1": {
			{"id": "e1", "amount": float64(4000)},
			{"id": "e2", "cost": float64(3000)},
		},
		"p2": {
			{"id": "e3", "price": "500"},
		},
	}
	return &fakeRemote{
		selectAllOrdered: func(table, _ string) ([]Record, error) {
			if table != "projects" {
				return nil, columnError("created_at")
			}
			return projects, nil
		},
		selectEq: func(table, column string, value any) ([]Record, error) {
			if column != "project_id" {
				return nil, columnError(column)
			}
			pid, _ := value.(string)
			switch table {
			case "tasks":
				return tasks[pid], nil
			case "expenses":
				return expenses[pid], nil
			default:
				return nil, columnError(column)
			}
		},
	}
}

func TestGetDashboardSnapshot(t *testing.T) {
	s := newTestStore(dashboardRemote(), nil)

	snap := s.GetDashboardSnapshot(context.Background())
	assert.Equal(t, DashboardSnapshot{
		TotalProjects:     2,
		ActiveProjects:    1,
		CompletedProjects: 1,
		TotalBudgetSpent:  7500,
		UpcomingTasks:     2,
	}, snap)
}

func TestGetReports(t *testing.T) {
	s := newTestStore(dashboardRemote(), nil)

	rows := s.GetReports(context.Background())
	require.Len(t, rows, 2)

	assert.Equal(t, ReportRow{
		ID:          "p1",
		ProjectName: "Kitchen",
		Status:      "active",
		Progress:    33,
		TotalCost:   7000,
		Budget:      10000,
		Variance:    3000,
	}, rows[0])

	// Missing title and zero expenses fall back to placeholders.
	assert.Equal(t, "Untitled", rows[1].ProjectName)
	assert.Equal(t, float64(500), rows[1].TotalCost)
	assert.Equal(t, float64(4500), rows[1].Variance)
}

// fakeBackend scripts the alternate REST backend.
type fakeBackend struct {
	created Record
	fail    bool
	calls   []string
}

func (f *fakeBackend) List(_ context.Context, entity string) ([]Record, error) {
	f.calls = append(f.calls, "list "+entity)
	if f.fail {
		return nil, errors.New("backend down")
	}
	return []Record{{"id": "b1"}}, nil
}

func (f *fakeBackend) ListByProject(_ context.Context, entity, _ string) ([]Record, error) {
	f.calls = append(f.calls, "listByProject "+entity)
	if f.fail {
		return nil, errors.New("backend down")
	}
	return []Record{{"id": "b1"}}, nil
}

func (f *fakeBackend) Get(_ context.Context, entity, id string) (Record, error) {
	f.calls = append(f.calls, "get "+entity)
	if f.fail {
		return nil, errors.New("backend down")
	}
	return Record{"id": id}, nil
}

func (f *fakeBackend) Create(_ context.Context, entity string, payload Record) (Record, error) {
	f.calls = append(f.calls, "create "+entity)
	if f.fail {
		return nil, errors.New("backend down")
	}
	f.created = payload
	created := cloneRecord(payload)
	created["id"] = "b-new"
	return created, nil
}

func (f *fakeBackend) Update(_ context.Context, entity, _ string, patch Record) (Record, error) {
	f.calls = append(f.calls, "update "+entity)
	if f.fail {
		return nil, errors.New("backend down")
	}
	return patch, nil
}

func (f *fakeBackend) Delete(_ context.Context, entity, _ string) error {
	f.calls = append(f.calls, "delete "+entity)
	if f.fail {
		return errors.New("backend down")
	}
	return nil
}

func TestBackendTakesPrecedenceForProjects(t *testing.T) {
	remote := &fakeRemote{}
	backend := &fakeBackend{}
	s := New(remote, newMemLocal(), backend, zap.NewNop())

	res, err := s.AddProject(context.Background(), ProjectIntent{UserID: "u1", Title: "Deck"})
	require.NoError(t, err)
	assert.Equal(t, SourceBackend, res.Source)
	assert.Equal(t, "b-new", RecordID(res.Record))
	// The backend receives the canonical shape, and the remote store is
	// never attempted.
	assert.Equal(t, "Deck", backend.created["title"])
	assert.Empty(t, remote.insertCalls)
}

func TestBackendFailureFallsThroughToRemote(t *testing.T) {
	remote := &fakeRemote{
		insert: func(_ string, row Record) (Record, error) {
			created := cloneRecord(row)
			created["id"] = "r-new"
			return created, nil
		},
	}
	backend := &fakeBackend{fail: true}
	s := New(remote, newMemLocal(), backend, zap.NewNop())

	res, err := s.AddProject(context.Background(), ProjectIntent{UserID: "u1", Title: "Deck"})
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, res.Source)
	assert.Equal(t, "r-new", RecordID(res.Record))
}

func TestGetProjectByIDNotFound(t *testing.T) {
	remote := &fakeRemote{
		selectEq: func(_, _ string, _ any) ([]Record, error) {
			return []Record{}, nil
		},
	}
	s := newTestStore(remote, nil)
	assert.Nil(t, s.GetProjectByID(context.Background(), "missing"))
}

func TestUpdateTaskRetriesAlternateConvention(t *testing.T) {
	var patches []Record
	remote := &fakeRemote{
		update: func(_, _ string, patch Record) (Record, error) {
			patches = append(patches, patch)
			if _, ok := patch["deadline"]; ok {
				return nil, columnError("deadline")
			}
			return patch, nil
		},
	}
	s := newTestStore(remote, nil)

	res, err := s.UpdateTask(context.Background(), "t1", Record{"dueDate": "2026-05-01"})
	require.NoError(t, err)
	require.Len(t, patches, 2)
	assert.Equal(t, "2026-05-01", patches[0]["deadline"])
	assert.Equal(t, "2026-05-01", patches[1]["due_date"])
	assert.Equal(t, "2026-05-01", res.Record["due_date"])
}

func TestDeleteProjectReportsRemoteFailure(t *testing.T) {
	remote := &fakeRemote{
		delete: func(_, _ string) error { return columnError("id") },
	}
	s := newTestStore(remote, nil)
	assert.False(t, s.DeleteProject(context.Background(), "p1"))
}
