package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRemote implements RemoteStore on a pgx connection pool. All SQL is
// built dynamically because column names are negotiated at runtime; every
// identifier goes through pgx.Identifier sanitization.
type PostgresRemote struct {
	pool *pgxpool.Pool
}

func NewPostgresRemote(pool *pgxpool.Pool) *PostgresRemote {
	return &PostgresRemote{pool: pool}
}

func (r *PostgresRemote) Insert(ctx context.Context, table string, row Record) (Record, error) {
	cols := make([]string, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	// Map iteration order is random; sort so repeated attempts produce the
	// same statement text.
	sort.Strings(cols)

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		quoted[i] = pgx.Identifier{c}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[c]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	rec, err := rowToRecord(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()
	return rec, rows.Err()
}

func (r *PostgresRemote) SelectEq(ctx context.Context, table, column string, value any) ([]Record, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1",
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)
	return r.collect(ctx, query, value)
}

func (r *PostgresRemote) SelectAll(ctx context.Context, table string) ([]Record, error) {
	query := fmt.Sprintf("SELECT * FROM %s", pgx.Identifier{table}.Sanitize())
	return r.collect(ctx, query)
}

func (r *PostgresRemote) SelectAllOrdered(ctx context.Context, table, orderColumn string) ([]Record, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s ORDER BY %s DESC",
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{orderColumn}.Sanitize(),
	)
	return r.collect(ctx, query)
}

func (r *PostgresRemote) Update(ctx context.Context, table, id string, patch Record) (Record, error) {
	cols := make([]string, 0, len(patch))
	for c := range patch {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	args = append(args, id)
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{c}.Sanitize(), i+2)
		args = append(args, patch[c])
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $1 RETURNING *",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(sets, ", "),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	rec, err := rowToRecord(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()
	return rec, rows.Err()
}

func (r *PostgresRemote) Delete(ctx context.Context, table, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pgx.Identifier{table}.Sanitize())
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *PostgresRemote) collect(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := rowToRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func rowToRecord(rows pgx.Rows) (Record, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, err
	}
	fields := rows.FieldDescriptions()
	rec := make(Record, len(fields))
	for i, fd := range fields {
		rec[fd.Name] = normalizeValue(values[i])
	}
	return rec, nil
}

// normalizeValue converts pgx driver types into JSON-friendly values so
// records round-trip through the local store and the HTTP surface unchanged.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case [16]byte:
		return uuid.UUID(t).String()
	case pgtype.Numeric:
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	default:
		return v
	}
}
