// Package finance holds the application state coordinator: the in-memory
// mirror of every persisted collection plus the active theme.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pradana/duit/internal/common"
	"github.com/pradana/duit/internal/ledger"
	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/repository"
)

// Tracker coordinates mutations and keeps the in-memory mirror in sync with
// the store. The mirror is always the collection returned by the last
// repository call, never mutated independently. One tracker is constructed
// per process and passed explicitly; it is not safe for concurrent use.
type Tracker struct {
	repo         *repository.Repository
	theme        model.Theme
	transactions []model.Transaction
	budgets      []model.Budget
	goals        []model.SavingsGoal
	loading      bool
}

// NewTracker loads every collection from the repository and returns a ready
// tracker. Loading reports true only while this initial load runs.
func NewTracker(ctx context.Context, repo *repository.Repository) *Tracker {
	t := &Tracker{repo: repo, loading: true}
	t.transactions = repo.Transactions(ctx)
	t.budgets = repo.Budgets(ctx)
	t.goals = repo.Goals(ctx)
	t.theme = repo.Theme(ctx)
	t.loading = false
	return t
}

// Loading reports whether the initial load is still in progress.
func (t *Tracker) Loading() bool { return t.loading }

// Transactions returns the current transaction mirror, newest-first by
// insertion.
func (t *Tracker) Transactions() []model.Transaction { return t.transactions }

// Budgets returns the current budget mirror.
func (t *Tracker) Budgets() []model.Budget { return t.budgets }

// Goals returns the current savings goal mirror.
func (t *Tracker) Goals() []model.SavingsGoal { return t.goals }

// Theme returns the active theme.
func (t *Tracker) Theme() model.Theme { return t.theme }

// NewTransaction carries the caller-supplied fields of a transaction;
// identity and creation time are assigned on add.
type NewTransaction struct {
	Type        model.TransactionType
	Category    string
	Description string
	Date        string
	Amount      decimal.Decimal
}

// AddTransaction records a new transaction and returns it.
func (t *Tracker) AddTransaction(ctx context.Context, in NewTransaction) model.Transaction {
	txn := model.Transaction{
		ID:          model.NewID(),
		CreatedAt:   time.Now(),
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		Amount:      in.Amount,
	}
	t.transactions = t.repo.AddTransaction(ctx, txn)
	return txn
}

// UpdateTransaction applies a partial update; an unknown id is a no-op.
func (t *Tracker) UpdateTransaction(ctx context.Context, id string, patch repository.TransactionPatch) {
	t.transactions = t.repo.UpdateTransaction(ctx, id, patch)
}

// DeleteTransaction removes a transaction; an unknown id is a no-op.
func (t *Tracker) DeleteTransaction(ctx context.Context, id string) {
	t.transactions = t.repo.DeleteTransaction(ctx, id)
}

// AddBudget sets the spending ceiling for a category, replacing any budget
// already covering it.
func (t *Tracker) AddBudget(ctx context.Context, category string, limit decimal.Decimal, period model.BudgetPeriod) model.Budget {
	b := model.Budget{
		ID:       model.NewID(),
		Category: category,
		Limit:    limit,
		Period:   period,
	}
	t.budgets = t.repo.AddBudget(ctx, b)
	return b
}

// DeleteBudget removes a budget; an unknown id is a no-op.
func (t *Tracker) DeleteBudget(ctx context.Context, id string) {
	t.budgets = t.repo.DeleteBudget(ctx, id)
}

// AddGoal creates a savings goal starting at zero.
func (t *Tracker) AddGoal(ctx context.Context, name string, target decimal.Decimal, deadline string) model.SavingsGoal {
	g := model.SavingsGoal{
		ID:            model.NewID(),
		CreatedAt:     time.Now(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}
	t.goals = t.repo.AddGoal(ctx, g)
	return g
}

// UpdateGoal applies a partial update; an unknown id is a no-op.
func (t *Tracker) UpdateGoal(ctx context.Context, id string, patch repository.GoalPatch) {
	t.goals = t.repo.UpdateGoal(ctx, id, patch)
}

// DeleteGoal removes a goal; an unknown id is a no-op.
func (t *Tracker) DeleteGoal(ctx context.Context, id string) {
	t.goals = t.repo.DeleteGoal(ctx, id)
}

// ContributeToGoal adds amount to the goal's current total and records a
// matching expense transaction in the savings category, dated today.
//
// The two writes are not atomic: a crash between them leaves the goal ahead
// of the ledger. That window is accepted, not compensated for.
func (t *Tracker) ContributeToGoal(ctx context.Context, id string, amount decimal.Decimal) (model.SavingsGoal, error) {
	var goal *model.SavingsGoal
	for i := range t.goals {
		if t.goals[i].ID == id {
			goal = &t.goals[i]
			break
		}
	}
	if goal == nil {
		return model.SavingsGoal{}, fmt.Errorf("savings goal %s: %w", id, common.ErrNotFound)
	}

	name := goal.Name
	newAmount := goal.CurrentAmount.Add(amount)
	t.goals = t.repo.UpdateGoal(ctx, id, repository.GoalPatch{CurrentAmount: &newAmount})

	t.AddTransaction(ctx, NewTransaction{
		Type:        model.TypeExpense,
		Category:    model.CategorySavings,
		Description: "Tabungan: " + name,
		Date:        time.Now().Format("2006-01-02"),
		Amount:      amount,
	})

	for _, g := range t.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return model.SavingsGoal{}, fmt.Errorf("savings goal %s: %w", id, common.ErrNotFound)
}

// ToggleTheme flips the theme and persists it immediately.
func (t *Tracker) ToggleTheme(ctx context.Context) model.Theme {
	t.theme = t.theme.Toggle()
	t.repo.SaveTheme(ctx, t.theme)
	return t.theme
}

// BudgetStatus is the derived display state of one budget against the
// current month's spending.
type BudgetStatus struct {
	Budget     model.Budget
	Spent      decimal.Decimal
	Percentage float64
	OverBudget bool
	NearLimit  bool
}

// BudgetStatuses computes per-budget spending for the month containing now.
// Over-budget is display-only: it never blocks a write. Percentage is capped
// at 100, and near-limit means at least 80% spent without being over.
func (t *Tracker) BudgetStatuses(now time.Time) []BudgetStatus {
	spending := ledger.SpendingByCategory(t.transactions, now)

	statuses := make([]BudgetStatus, 0, len(t.budgets))
	for _, b := range t.budgets {
		spent := spending[b.Category]

		var pct float64
		if b.Limit.IsPositive() {
			pct, _ = spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Float64()
		}
		if pct > 100 {
			pct = 100
		}

		over := spent.GreaterThan(b.Limit)
		statuses = append(statuses, BudgetStatus{
			Budget:     b,
			Spent:      spent,
			Percentage: pct,
			OverBudget: over,
			NearLimit:  pct >= 80 && !over,
		})
	}
	return statuses
}
