package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// RemoteStore is the primary backing store: table-per-entity relational access
// with column-equality filters. Implementations must surface schema rejections
// (unknown column, constraint violation, policy denial) as errors so the
// negotiator and the project-scoped fetcher can walk their candidate ladders.
type RemoteStore interface {
	Insert(ctx context.Context, table string, row Record) (Record, error)
	SelectEq(ctx context.Context, table, column string, value any) ([]Record, error)
	SelectAll(ctx context.Context, table string) ([]Record, error)
	// SelectAllOrdered lists rows ordered by orderColumn descending. Stores
	// lacking the column return an error rather than silently reordering.
	SelectAllOrdered(ctx context.Context, table, orderColumn string) ([]Record, error)
	Update(ctx context.Context, table, id string, patch Record) (Record, error)
	Delete(ctx context.Context, table, id string) error
}

// diagnostic carries the rejection detail logged for every failed candidate.
type diagnostic struct {
	Code    string
	Message string
	Detail  string
	Hint    string
}

func diagnose(err error) diagnostic {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return diagnostic{
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Detail:  pgErr.Detail,
			Hint:    pgErr.Hint,
		}
	}
	return diagnostic{Message: err.Error()}
}
