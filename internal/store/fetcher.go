package store

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Candidate foreign-key column names, highest confidence first. The first
// column the remote store accepts without a query error wins; an empty result
// is still a valid success for that column.
var projectKeyCandidates = []string{"project_id", "projectId", "project", "initiative_id"}

// byProject fetches all rows of a kind belonging to a project, negotiating
// the foreign-key column name.
func (s *EntityStore) byProject(ctx context.Context, kind Kind, projectID string) []Record {
	if projectID == "" {
		return nil
	}

	table := kind.Table()
	for _, key := range projectKeyCandidates {
		rows, err := s.remote.SelectEq(ctx, table, key, projectID)
		if err != nil {
			s.log.Debug("project key candidate rejected",
				zap.String("table", table),
				zap.String("column", key),
				zap.Error(err),
			)
			continue
		}
		sortByCreatedAt(rows)
		return rows
	}

	s.log.Warn("could not match any project key column",
		zap.String("table", table),
		zap.String("projectId", projectID),
	)
	return nil
}

// sortByCreatedAt orders rows newest first. Sorting happens locally rather
// than in the query so stores without a created_at column do not error; rows
// missing the field keep their relative order.
func sortByCreatedAt(rows []Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, aok := createdAt(rows[i])
		b, bok := createdAt(rows[j])
		if !aok || !bok {
			return false
		}
		return a.After(b)
	})
}

func createdAt(r Record) (time.Time, bool) {
	switch v := r["created_at"].(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
