package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradana/duit/internal/model"
)

func tx(amount int64, typ model.TransactionType, category, date string) model.Transaction {
	return model.Transaction{
		ID:       model.NewID(),
		Amount:   decimal.NewFromInt(amount),
		Type:     typ,
		Category: category,
		Date:     date,
	}
}

func TestBalanceMatchesIncomeMinusExpense(t *testing.T) {
	tests := []struct {
		name string
		txs  []model.Transaction
	}{
		{name: "empty", txs: nil},
		{name: "income only", txs: []model.Transaction{
			tx(5000, model.TypeIncome, "salary", "2024-01-10"),
		}},
		{name: "mixed", txs: []model.Transaction{
			tx(5000, model.TypeIncome, "salary", "2024-01-10"),
			tx(2000, model.TypeExpense, "food", "2024-01-15"),
			tx(0, model.TypeExpense, "other", "2024-01-16"),
			tx(750, model.TypeIncome, "gift", "2024-03-02"),
		}},
		{name: "expense exceeds income", txs: []model.Transaction{
			tx(100, model.TypeIncome, "salary", "2024-02-01"),
			tx(300, model.TypeExpense, "bills", "2024-02-02"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := TotalIncome(tt.txs).Sub(TotalExpense(tt.txs))
			got := Balance(tt.txs)
			assert.True(t, got.Equal(want), "Balance()=%s, income-expense=%s", got, want)
		})
	}
}

func TestAggregateExample(t *testing.T) {
	txs := []model.Transaction{
		tx(5000, model.TypeIncome, "salary", "2024-01-10"),
		tx(2000, model.TypeExpense, "food", "2024-01-15"),
	}
	now := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)

	assert.True(t, Balance(txs).Equal(decimal.NewFromInt(3000)))
	assert.True(t, TotalIncome(txs).Equal(decimal.NewFromInt(5000)))
	assert.True(t, TotalExpense(txs).Equal(decimal.NewFromInt(2000)))

	spending := SpendingByCategory(txs, now)
	require.Len(t, spending, 1)
	assert.True(t, spending["food"].Equal(decimal.NewFromInt(2000)))
}

func TestTotalExpenseIsUnsigned(t *testing.T) {
	txs := []model.Transaction{
		tx(2000, model.TypeExpense, "food", "2024-01-15"),
		tx(500, model.TypeExpense, "transport", "2024-01-16"),
	}
	assert.True(t, TotalExpense(txs).Equal(decimal.NewFromInt(2500)))
	assert.False(t, TotalExpense(txs).IsNegative())
}

func TestCurrentMonthPrefixMatching(t *testing.T) {
	now := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(100, model.TypeExpense, "food", "2024-01-05"),
		tx(200, model.TypeExpense, "food", "2024-02-05"),
		tx(300, model.TypeExpense, "food", "2023-01-05"),
		tx(400, model.TypeExpense, "food", "05/01/2024"), // malformed, silently excluded
		tx(500, model.TypeExpense, "food", ""),
	}

	matched := CurrentMonth(txs, now)
	require.Len(t, matched, 1)
	assert.True(t, matched[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestSpendingByCategoryIgnoresIncome(t *testing.T) {
	now := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(5000, model.TypeIncome, "salary", "2024-01-10"),
		tx(2000, model.TypeExpense, "food", "2024-01-15"),
		tx(300, model.TypeExpense, "food", "2024-01-18"),
		tx(100, model.TypeExpense, "transport", "2024-01-19"),
	}

	spending := SpendingByCategory(txs, now)
	require.Len(t, spending, 2)
	assert.True(t, spending["food"].Equal(decimal.NewFromInt(2300)))
	assert.True(t, spending["transport"].Equal(decimal.NewFromInt(100)))
}

func TestGroupByCategory(t *testing.T) {
	txs := []model.Transaction{
		tx(2000, model.TypeExpense, "food", "2024-01-15"),
		tx(5000, model.TypeExpense, "bills", "2024-01-16"),
		tx(1000, model.TypeExpense, "food", "2024-01-17"),
		tx(9999, model.TypeIncome, "salary", "2024-01-18"),
		tx(100, model.TypeExpense, "no-such-category", "2024-01-19"),
	}

	got := GroupByCategory(txs, model.TypeExpense)
	require.Len(t, got, 3, "income and zero-match categories are omitted")

	// Strictly descending by value.
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Value.GreaterThanOrEqual(got[i].Value))
	}
	assert.Equal(t, "Tagihan", got[0].Name)
	assert.True(t, got[0].Value.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "Makanan", got[1].Name)

	// Unknown category resolves to the catch-all entry.
	assert.Equal(t, "Lainnya", got[2].Name)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil, model.TypeExpense))
}

func TestMonthlySeriesShape(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(5000, model.TypeIncome, "salary", "2024-01-10"),
		tx(2000, model.TypeExpense, "food", "2024-03-05"),
	}

	series := MonthlySeries(txs, now, 6)
	require.Len(t, series, 6)

	// Oldest to newest, ending at now's month.
	assert.Equal(t, []string{"Okt", "Nov", "Des", "Jan", "Feb", "Mar"},
		[]string{series[0].Month, series[1].Month, series[2].Month, series[3].Month, series[4].Month, series[5].Month})

	// January has the income, March the expense, everything else zero-filled.
	assert.True(t, series[3].Income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, series[3].Expense.IsZero())
	assert.True(t, series[5].Expense.Equal(decimal.NewFromInt(2000)))
	for _, i := range []int{0, 1, 2, 4} {
		assert.True(t, series[i].Income.IsZero())
		assert.True(t, series[i].Expense.IsZero())
	}
}

func TestMonthlySeriesAlwaysFullLength(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Len(t, MonthlySeries(nil, now, 6), 6)
	assert.Len(t, MonthlySeries(nil, now, 12), 12)
}

func TestMonthlySeriesNonPositiveCount(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		tx(5000, model.TypeIncome, "salary", "2024-05-10"),
	}

	assert.Empty(t, MonthlySeries(txs, now, 0))
	assert.Empty(t, MonthlySeries(txs, now, -1))
	assert.Empty(t, MonthlySeries(txs, now, -100))
}

func TestMonthlySeriesDoesNotMutateInput(t *testing.T) {
	txs := []model.Transaction{
		tx(5000, model.TypeIncome, "salary", "2024-01-10"),
		tx(2000, model.TypeExpense, "food", "2024-03-05"),
	}
	snapshot := make([]model.Transaction, len(txs))
	copy(snapshot, txs)

	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	_ = MonthlySeries(txs, now, 6)
	_ = GroupByCategory(txs, model.TypeExpense)
	_ = CurrentMonth(txs, now)

	assert.Equal(t, snapshot, txs)
}
