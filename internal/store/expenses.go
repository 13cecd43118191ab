package store

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const entityExpenses = "expenses"

func (s *EntityStore) GetExpensesByProject(ctx context.Context, projectID string) []Record {
	if rows, ok := s.backendList(ctx, "expenses.getByProject", func(ctx context.Context) ([]Record, error) {
		return s.backend.ListByProject(ctx, entityExpenses, projectID)
	}); ok {
		return rows
	}
	return s.byProject(ctx, KindExpense, projectID)
}

// AddExpense creates an expense. The candidate ladder is the widest of all
// kinds: deployed expense tables have been seen with amount, cost, or price
// columns and half a dozen title spellings.
func (s *EntityStore) AddExpense(ctx context.Context, in ExpenseIntent) (*Result, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.ProjectID == "" || in.Title == "" {
		return nil, ErrInvalidInput
	}
	in.Category = lowerOr(in.Category, "other")

	if rec := s.backendCall(ctx, "expenses.add", func(ctx context.Context) (Record, error) {
		return s.backend.Create(ctx, entityExpenses, Record{
			"project_id":   in.ProjectID,
			"amount":       in.Amount,
			"title":        in.Title,
			"category":     in.Category,
			"purchased_at": orNil(in.PurchasedAt),
		})
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	created, err := s.tryInsert(ctx, KindExpense, expandShapes(expenseShapes(in), in.UserID != ""))
	if err != nil {
		s.log.Error("expense insert failed for all payload variants; check access policy and expense columns",
			zap.String("projectId", in.ProjectID))
		return nil, err
	}
	return &Result{Record: created, Source: SourceRemote}, nil
}

// UpdateExpense patches an expense, retrying once with the caller's original
// field names when the canonical (purchased_at) naming is rejected.
func (s *EntityStore) UpdateExpense(ctx context.Context, id string, patch Record) (*Result, error) {
	normalized := normalizeExpensePatch(patch)

	if rec := s.backendCall(ctx, "expenses.update", func(ctx context.Context) (Record, error) {
		return s.backend.Update(ctx, entityExpenses, id, normalized)
	}); rec != nil {
		return &Result{Record: rec, Source: SourceBackend}, nil
	}

	updated, err := s.remote.Update(ctx, KindExpense.Table(), id, normalized)
	if err == nil {
		return &Result{Record: updated, Source: SourceRemote}, nil
	}
	s.logUpdateFailure(KindExpense, id, err)

	updated, err = s.remote.Update(ctx, KindExpense.Table(), id, expensePatchAlternate(patch))
	if err != nil {
		s.logUpdateFailure(KindExpense, id, err)
		return nil, ErrExhausted
	}
	return &Result{Record: updated, Source: SourceRemote}, nil
}

func (s *EntityStore) DeleteExpense(ctx context.Context, id string) bool {
	if s.backendDelete(ctx, "expenses.delete", entityExpenses, id) {
		return true
	}
	if err := s.remote.Delete(ctx, KindExpense.Table(), id); err != nil {
		s.logDeleteFailure(KindExpense, id, err)
		return false
	}
	return true
}
