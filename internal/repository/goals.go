package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/storage"
)

// GoalPatch is a partial update: nil fields are left unchanged.
type GoalPatch struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *string
}

// Goals returns all stored savings goals.
func (r *Repository) Goals(ctx context.Context) []model.SavingsGoal {
	return load[model.SavingsGoal](ctx, r.kv, storage.KeyGoals)
}

// AddGoal appends g and persists the collection.
func (r *Repository) AddGoal(ctx context.Context, g model.SavingsGoal) []model.SavingsGoal {
	updated := append(r.Goals(ctx), g)
	save(ctx, r.kv, storage.KeyGoals, updated)
	return updated
}

// UpdateGoal applies a partial update to the goal with the given id. An
// unknown id is a no-op returning the unchanged collection.
func (r *Repository) UpdateGoal(ctx context.Context, id string, patch GoalPatch) []model.SavingsGoal {
	updated := r.Goals(ctx)
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		if patch.Name != nil {
			updated[i].Name = *patch.Name
		}
		if patch.TargetAmount != nil {
			updated[i].TargetAmount = *patch.TargetAmount
		}
		if patch.CurrentAmount != nil {
			updated[i].CurrentAmount = *patch.CurrentAmount
		}
		if patch.Deadline != nil {
			updated[i].Deadline = *patch.Deadline
		}
		break
	}
	save(ctx, r.kv, storage.KeyGoals, updated)
	return updated
}

// DeleteGoal removes the goal with the given id. An unknown id is a no-op
// returning the unchanged collection.
func (r *Repository) DeleteGoal(ctx context.Context, id string) []model.SavingsGoal {
	current := r.Goals(ctx)
	updated := make([]model.SavingsGoal, 0, len(current))
	for _, g := range current {
		if g.ID != id {
			updated = append(updated, g)
		}
	}
	save(ctx, r.kv, storage.KeyGoals, updated)
	return updated
}
