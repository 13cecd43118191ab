package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fakeRemote scripts the remote store per call. Unset functions fail the
// call, so a test only wires the paths it expects to be hit.
type fakeRemote struct {
	insert           func(table string, row Record) (Record, error)
	selectEq         func(table, column string, value any) ([]Record, error)
	selectAll        func(table string) ([]Record, error)
	selectAllOrdered func(table, orderColumn string) ([]Record, error)
	update           func(table, id string, patch Record) (Record, error)
	delete           func(table, id string) error

	insertCalls  []Record
	insertTables []string
}

func (f *fakeRemote) Insert(_ context.Context, table string, row Record) (Record, error) {
	f.insertCalls = append(f.insertCalls, row)
	f.insertTables = append(f.insertTables, table)
	if f.insert == nil {
		return nil, fmt.Errorf("unexpected insert into %s", table)
	}
	return f.insert(table, row)
}

func (f *fakeRemote) SelectEq(_ context.Context, table, column string, value any) ([]Record, error) {
	if f.selectEq == nil {
		return nil, fmt.Errorf("unexpected select from %s", table)
	}
	return f.selectEq(table, column, value)
}

func (f *fakeRemote) SelectAll(_ context.Context, table string) ([]Record, error) {
	if f.selectAll == nil {
		return nil, fmt.Errorf("unexpected select from %s", table)
	}
	return f.selectAll(table)
}

func (f *fakeRemote) SelectAllOrdered(_ context.Context, table, orderColumn string) ([]Record, error) {
	if f.selectAllOrdered == nil {
		return nil, fmt.Errorf("unexpected ordered select from %s", table)
	}
	return f.selectAllOrdered(table, orderColumn)
}

func (f *fakeRemote) Update(_ context.Context, table, id string, patch Record) (Record, error) {
	if f.update == nil {
		return nil, fmt.Errorf("unexpected update of %s", table)
	}
	return f.update(table, id, patch)
}

func (f *fakeRemote) Delete(_ context.Context, table, id string) error {
	if f.delete == nil {
		return fmt.Errorf("unexpected delete from %s", table)
	}
	return f.delete(table, id)
}

// memLocal is an in-memory LocalStore.
type memLocal struct {
	data map[Kind][]Record
}

func newMemLocal() *memLocal {
	return &memLocal{data: make(map[Kind][]Record)}
}

func (m *memLocal) Read(_ context.Context, kind Kind) []Record {
	rows := m.data[kind]
	out := make([]Record, len(rows))
	copy(out, rows)
	return out
}

func (m *memLocal) Write(_ context.Context, kind Kind, rows []Record) {
	m.data[kind] = rows
}

func newTestStore(remote RemoteStore, local LocalStore) *EntityStore {
	if local == nil {
		local = newMemLocal()
	}
	return New(remote, local, nil, zap.NewNop())
}

// columnError mimics the rejection a store raises for an unknown column.
func columnError(column string) error {
	return &pgconn.PgError{
		Code:    "42703",
		Message: fmt.Sprintf("column %q does not exist", column),
	}
}

// rejectUnknownColumns accepts an insert only when every payload key is in
// the allowed set, echoing the row back with an id.
func rejectUnknownColumns(allowed ...string) func(table string, row Record) (Record, error) {
	ok := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		ok[c] = true
	}
	n := 0
	return func(_ string, row Record) (Record, error) {
		for k := range row {
			if !ok[k] {
				return nil, columnError(k)
			}
		}
		n++
		created := cloneRecord(row)
		created["id"] = fmt.Sprintf("row-%d", n)
		return created, nil
	}
}
