package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("renovatrack_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		CREATE TABLE expenses (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id text NOT NULL,
			title text,
			amount numeric,
			category text,
			created_at timestamptz NOT NULL DEFAULT now()
		)`)
	require.NoError(t, err)

	return pool
}

func TestPostgresRemoteRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	remote := NewPostgresRemote(startPostgres(t))

	created, err := remote.Insert(ctx, "expenses", Record{
		"project_id": "p1",
		"title":      "Lumber",
		"amount":     420.5,
		"category":   "materials",
	})
	require.NoError(t, err)
	id := RecordID(created)
	assert.NotEmpty(t, id)
	assert.Equal(t, "Lumber", created["title"])
	assert.Equal(t, 420.5, Money(created))

	_, err = remote.Insert(ctx, "expenses", Record{
		"project_id": "p1",
		"title":      "Paint",
		"amount":     80,
	})
	require.NoError(t, err)

	rows, err := remote.SelectEq(ctx, "expenses", "project_id", "p1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = remote.SelectAllOrdered(ctx, "expenses", "created_at")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Paint", rows[0]["title"])

	updated, err := remote.Update(ctx, "expenses", id, Record{"title": "Framing lumber"})
	require.NoError(t, err)
	assert.Equal(t, "Framing lumber", updated["title"])

	require.NoError(t, remote.Delete(ctx, "expenses", id))
	rows, err = remote.SelectEq(ctx, "expenses", "id", id)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPostgresRemoteUnknownColumn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	remote := NewPostgresRemote(startPostgres(t))

	_, err := remote.Insert(ctx, "expenses", Record{
		"project_id":    "p1",
		"expense_title": "Lumber",
	})
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "42703", pgErr.Code)

	d := diagnose(err)
	assert.Equal(t, "42703", d.Code)
	assert.NotEmpty(t, d.Message)

	_, err = remote.SelectEq(ctx, "expenses", "initiative_id", "p1")
	require.Error(t, err)
}

func TestPostgresNegotiationAgainstRealSchema(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	remote := NewPostgresRemote(startPostgres(t))
	s := newTestStore(remote, nil)

	// The schema has no user_id or purchased_at column, so earlier
	// candidates are rejected until the plain title/amount shape lands.
	res, err := s.AddExpense(context.Background(), ExpenseIntent{
		UserID:    "9e8b7c6d-0000-0000-0000-000000000001",
		ProjectID: "p1",
		Title:     "Fixtures",
		Amount:    1200,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, res.Source)
	assert.Equal(t, "p1", res.Record["project_id"])

	rows := s.GetExpensesByProject(context.Background(), "p1")
	require.Len(t, rows, 1)
	assert.Equal(t, float64(1200), Money(rows[0]))
}
