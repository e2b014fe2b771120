package model

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryInfoLookup(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		typ      TransactionType
		wantName string
	}{
		{name: "known expense", id: "food", typ: TypeExpense, wantName: "Makanan"},
		{name: "known income", id: "salary", typ: TypeIncome, wantName: "Gaji"},
		{name: "unknown expense falls back", id: "crypto", typ: TypeExpense, wantName: "Lainnya"},
		{name: "unknown income falls back", id: "", typ: TypeIncome, wantName: "Lainnya"},
		{name: "expense id not valid for income", id: "food", typ: TypeIncome, wantName: "Lainnya"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategoryInfo(tt.id, tt.typ)
			assert.Equal(t, tt.wantName, got.Name)
			assert.NotEmpty(t, got.Color, "every resolved category carries display metadata")
		})
	}
}

func TestCategoryTablesEndInCatchAll(t *testing.T) {
	assert.Equal(t, "other", ExpenseCategories[len(ExpenseCategories)-1].ID)
	assert.Equal(t, "other", IncomeCategories[len(IncomeCategories)-1].ID)
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("transfer").Valid())
	assert.False(t, TransactionType("").Valid())
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeLight, ParseTheme(""))
	assert.Equal(t, ThemeLight, ParseTheme("solarized"), "unrecognized values default to light")
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
}

func TestGoalCompleted(t *testing.T) {
	goal := SavingsGoal{TargetAmount: decimal.NewFromInt(2000), CurrentAmount: decimal.NewFromInt(500)}
	assert.False(t, goal.Completed())

	goal.CurrentAmount = decimal.NewFromInt(2000)
	assert.True(t, goal.Completed())

	goal.CurrentAmount = decimal.NewFromInt(9000)
	assert.True(t, goal.Completed(), "overshoot still counts as completed")
}

func TestGoalProgress(t *testing.T) {
	goal := SavingsGoal{TargetAmount: decimal.NewFromInt(2000), CurrentAmount: decimal.NewFromInt(500)}
	assert.InDelta(t, 0.25, goal.Progress(), 0.001)

	goal.CurrentAmount = decimal.NewFromInt(4000)
	assert.Equal(t, 1.0, goal.Progress(), "progress is capped at 1")

	zeroTarget := SavingsGoal{CurrentAmount: decimal.NewFromInt(100)}
	assert.Equal(t, 0.0, zeroTarget.Progress())
}

func TestNewIDShape(t *testing.T) {
	id := NewID()
	parts := strings.SplitN(id, "-", 2)
	assert.Len(t, parts, 2)
	assert.Len(t, parts[1], 9, "random suffix is nine characters")
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
