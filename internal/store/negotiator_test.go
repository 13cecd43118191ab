package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskWalksShapesInOrder(t *testing.T) {
	remote := &fakeRemote{
		insert: rejectUnknownColumns("project_id", "title", "priority", "assigned_to", "due_date", "status"),
	}
	s := newTestStore(remote, nil)

	res, err := s.AddTask(context.Background(), TaskIntent{
		ProjectID: "p1",
		Title:     "Demo wall",
		DueDate:   "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, res.Source)
	assert.Equal(t, "Demo wall", res.Record["title"])

	// Without a user the deadline shape is tried first, then the due_date
	// shape wins. user_id shapes are never attempted.
	require.Len(t, remote.insertCalls, 2)
	assert.Contains(t, remote.insertCalls[0], "deadline")
	assert.Contains(t, remote.insertCalls[1], "due_date")
	for _, call := range remote.insertCalls {
		assert.NotContains(t, call, "user_id")
	}
}

func TestAddTaskStopsAtFirstAcceptedShape(t *testing.T) {
	remote := &fakeRemote{
		insert: func(_ string, row Record) (Record, error) {
			created := cloneRecord(row)
			created["id"] = "t1"
			return created, nil
		},
	}
	s := newTestStore(remote, nil)

	_, err := s.AddTask(context.Background(), TaskIntent{UserID: "u1", ProjectID: "p1", Title: "Paint"})
	require.NoError(t, err)
	assert.Len(t, remote.insertCalls, 1)
	assert.Equal(t, "u1", remote.insertCalls[0]["user_id"])
}

func TestAddTaskExhaustionReturnsSentinel(t *testing.T) {
	remote := &fakeRemote{
		insert: func(_ string, _ Record) (Record, error) {
			return nil, columnError("anything")
		},
	}
	s := newTestStore(remote, nil)

	res, err := s.AddTask(context.Background(), TaskIntent{ProjectID: "p1", Title: "Tile"})
	require.ErrorIs(t, err, ErrExhausted)
	assert.Nil(t, res)
	// All four userless shapes were attempted before giving up.
	assert.Len(t, remote.insertCalls, 4)
}

func TestAddTaskInvalidInputSkipsRemote(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(remote, nil)

	_, err := s.AddTask(context.Background(), TaskIntent{ProjectID: "p1", Title: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.AddTask(context.Background(), TaskIntent{Title: "No project"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, remote.insertCalls)
}

func TestAddTaskAppliesDefaults(t *testing.T) {
	remote := &fakeRemote{
		insert: rejectUnknownColumns("project_id", "title", "description", "priority", "assigned_to", "deadline", "status"),
	}
	s := newTestStore(remote, nil)

	res, err := s.AddTask(context.Background(), TaskIntent{ProjectID: "p1", Title: "Sand floors"})
	require.NoError(t, err)
	assert.Equal(t, "pending", res.Record["status"])
	assert.Equal(t, "medium", res.Record["priority"])
	assert.Nil(t, res.Record["deadline"])
}

func TestRetriedCreateInsertsTwice(t *testing.T) {
	// Creates are not idempotent: the same intent submitted twice produces
	// two rows, and callers own dedupe.
	remote := &fakeRemote{
		insert: rejectUnknownColumns("project_id", "title", "description", "priority", "assigned_to", "deadline", "status"),
	}
	s := newTestStore(remote, nil)

	in := TaskIntent{ProjectID: "p1", Title: "Order fixtures"}
	first, err := s.AddTask(context.Background(), in)
	require.NoError(t, err)
	second, err := s.AddTask(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, RecordID(first.Record), RecordID(second.Record))
}

func TestAddExpenseLadderReachesDegenerateShape(t *testing.T) {
	remote := &fakeRemote{
		insert: rejectUnknownColumns("name", "cost"),
	}
	s := newTestStore(remote, nil)

	res, err := s.AddExpense(context.Background(), ExpenseIntent{
		ProjectID: "p1",
		Title:     "Lumber",
		Amount:    420,
	})
	require.NoError(t, err)

	// The last userless shape drops the project reference entirely.
	last := remote.insertCalls[len(remote.insertCalls)-1]
	assert.Equal(t, Record{"name": "Lumber", "cost": float64(420)}, last)
	assert.Equal(t, "Lumber", res.Record["name"])
}

func TestAddProjectRequiresUser(t *testing.T) {
	remote := &fakeRemote{}
	s := newTestStore(remote, nil)

	_, err := s.AddProject(context.Background(), ProjectIntent{Title: "Kitchen"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, remote.insertCalls)
}

func TestAddProjectNameAliasAndBudgetFallback(t *testing.T) {
	remote := &fakeRemote{
		insert: func(_ string, row Record) (Record, error) {
			created := cloneRecord(row)
			created["id"] = "proj-1"
			return created, nil
		},
	}
	s := newTestStore(remote, nil)

	res, err := s.AddProject(context.Background(), ProjectIntent{
		UserID:       "u1",
		Name:         "  Kitchen refresh ",
		TargetBudget: 15000,
		Status:       "Active",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen refresh", res.Record["title"])
	assert.Equal(t, float64(15000), res.Record["budget"])
	assert.Equal(t, "active", res.Record["status"])
}
