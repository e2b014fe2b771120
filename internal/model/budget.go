package model

import "github.com/shopspring/decimal"

// BudgetPeriod is the window a budget limit applies to. Only monthly budgets
// are evaluated against spending today; weekly is accepted and stored but
// not consumed by any aggregation.
type BudgetPeriod string

const (
	// PeriodMonthly limits spending per calendar month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodWeekly is stored but never evaluated.
	PeriodWeekly BudgetPeriod = "weekly"
)

// Budget is a per-category spending ceiling. At most one budget exists per
// category: adding a budget for an already-budgeted category replaces it.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Period   BudgetPeriod    `json:"period"`
	Limit    decimal.Decimal `json:"limit"`
}
