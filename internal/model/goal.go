package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a named target amount with progress tracked through
// cumulative contributions. Completion is derived, never stored, and
// CurrentAmount is allowed to exceed TargetAmount.
type SavingsGoal struct {
	CreatedAt     time.Time       `json:"createdAt"`
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Deadline      string          `json:"deadline,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
}

// Completed reports whether the goal has reached its target.
func (g SavingsGoal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns the funded fraction of the goal, capped at 1.
func (g SavingsGoal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	p, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	if p > 1 {
		return 1
	}
	return p
}
