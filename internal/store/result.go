package store

import "errors"

var (
	// ErrInvalidInput means a required identifying field was missing; no
	// remote attempt was made.
	ErrInvalidInput = errors.New("store: invalid input")

	// ErrExhausted means every backend (alternate, remote, and local where
	// applicable) failed to accept the record.
	ErrExhausted = errors.New("store: all backends failed")
)

// Source tags where a saved record ended up.
type Source int

const (
	SourceRemote Source = iota
	SourceBackend
	SourceLocal
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceBackend:
		return "backend"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Result is the outcome of a successful create or update. A SourceLocal
// result is a degraded save: the record lives only in the on-device fallback
// store, but carries a usable id like any other.
type Result struct {
	Record Record
	Source Source
}

// Degraded reports whether the record was saved locally after remote
// exhaustion.
func (r *Result) Degraded() bool { return r.Source == SourceLocal }
