package store

import (
	"context"

	"go.uber.org/zap"

	"renovatrack/internal/metrics"
)

// tryInsert walks the candidate payload shapes in rank order, attempting one
// remote insert per shape. Attempts are strictly sequential: log order must
// match attempt order, and concurrent candidates could race into duplicate
// rows. The first accepted shape wins; every rejection is reported through
// the diagnostic log, never thrown.
func (s *EntityStore) tryInsert(ctx context.Context, kind Kind, candidates []Record) (Record, error) {
	table := kind.Table()
	for _, payload := range candidates {
		metrics.RecordInsertAttempt(table)

		created, err := s.remote.Insert(ctx, table, payload)
		if err == nil {
			return created, nil
		}

		d := diagnose(err)
		metrics.RecordShapeRejection(table, d.Code)
		s.log.Error("insert candidate rejected",
			zap.String("table", table),
			zap.Any("payload", payload),
			zap.String("code", d.Code),
			zap.String("message", d.Message),
			zap.String("details", d.Detail),
			zap.String("hint", d.Hint),
		)
	}
	return nil, ErrExhausted
}
