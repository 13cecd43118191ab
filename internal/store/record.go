package store

import (
	"fmt"
	"strings"
	"time"
)

// Record is a loosely typed row. The remote schema's exact column names are
// not known at call time, so entities travel as maps rather than structs.
type Record = map[string]any

// Kind identifies one entity type handled by the store.
type Kind string

const (
	KindProject     Kind = "project"
	KindTask        Kind = "task"
	KindExpense     Kind = "expense"
	KindPhoto       Kind = "photo"
	KindMaterial    Kind = "material"
	KindContractor  Kind = "contractor"
	KindPermit      Kind = "permit"
	KindInventory   Kind = "inventory"
	KindMaintenance Kind = "maintenance"
)

type kindSpec struct {
	table       string
	localPrefix string // empty means no local fallback for this kind
}

var kinds = map[Kind]kindSpec{
	KindProject:     {table: "projects"},
	KindTask:        {table: "tasks"},
	KindExpense:     {table: "expenses"},
	KindPhoto:       {table: "project_photos", localPrefix: "local-photo-"},
	KindMaterial:    {table: "materials"},
	KindContractor:  {table: "contractors", localPrefix: "local-contractor-"},
	KindPermit:      {table: "permits", localPrefix: "local-permit-"},
	KindInventory:   {table: "inventory", localPrefix: "local-inventory-"},
	KindMaintenance: {table: "maintenance", localPrefix: "local-maintenance-"},
}

// Table returns the remote table backing a kind.
func (k Kind) Table() string { return kinds[k].table }

// SupportsLocal reports whether records of this kind may live in the local
// durable fallback store.
func (k Kind) SupportsLocal() bool { return kinds[k].localPrefix != "" }

// IsLocalID reports whether id names a local-only record of this kind.
func (k Kind) IsLocalID(id string) bool {
	p := kinds[k].localPrefix
	return p != "" && strings.HasPrefix(id, p)
}

func (k Kind) localID(at time.Time) string {
	return fmt.Sprintf("%s%d", kinds[k].localPrefix, at.UnixMilli())
}

// RecordID extracts the id of a row as a string, tolerating non-string id
// columns returned by the remote store.
func RecordID(r Record) string {
	switch v := r["id"].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func cloneRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// orNil maps an empty string to SQL NULL so optional columns are not written
// as empty text.
func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
