package repository

import (
	"context"

	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/storage"
)

// Budgets returns all stored budgets.
func (r *Repository) Budgets(ctx context.Context) []model.Budget {
	return load[model.Budget](ctx, r.kv, storage.KeyBudgets)
}

// AddBudget appends b, replacing any existing budget for the same category.
// The uniqueness invariant lives here, not in a separate check: a second add
// for the same category wins.
func (r *Repository) AddBudget(ctx context.Context, b model.Budget) []model.Budget {
	current := r.Budgets(ctx)
	updated := make([]model.Budget, 0, len(current)+1)
	for _, existing := range current {
		if existing.Category != b.Category {
			updated = append(updated, existing)
		}
	}
	updated = append(updated, b)
	save(ctx, r.kv, storage.KeyBudgets, updated)
	return updated
}

// DeleteBudget removes the budget with the given id. An unknown id is a
// no-op returning the unchanged collection.
func (r *Repository) DeleteBudget(ctx context.Context, id string) []model.Budget {
	current := r.Budgets(ctx)
	updated := make([]model.Budget, 0, len(current))
	for _, b := range current {
		if b.ID != id {
			updated = append(updated, b)
		}
	}
	save(ctx, r.kv, storage.KeyBudgets, updated)
	return updated
}
