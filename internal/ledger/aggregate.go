// Package ledger derives balances, category groupings, and time series from
// transaction snapshots. Every function is pure: inputs are never mutated
// and there are no side effects.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pradana/duit/internal/model"
)

// Balance returns the signed sum over all transactions: income counts
// positive, expense negative.
func Balance(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == model.TypeIncome {
			total = total.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
		}
	}
	return total
}

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(txs []model.Transaction) decimal.Decimal {
	return sumByType(txs, model.TypeIncome)
}

// TotalExpense sums the amounts of all expense transactions. The result is
// unsigned.
func TotalExpense(txs []model.Transaction) decimal.Decimal {
	return sumByType(txs, model.TypeExpense)
}

func sumByType(txs []model.Transaction, typ model.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == typ {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// MonthKey formats t as the "YYYY-MM" bucket key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// CurrentMonth filters txs down to those dated in the same calendar month as
// now. Matching is a string-prefix test against the month key, so a
// transaction with a malformed date is silently excluded rather than
// reported.
func CurrentMonth(txs []model.Transaction, now time.Time) []model.Transaction {
	key := MonthKey(now)
	var matched []model.Transaction
	for _, t := range txs {
		if strings.HasPrefix(t.Date, key) {
			matched = append(matched, t)
		}
	}
	return matched
}

// SpendingByCategory sums the current month's expenses grouped by raw
// category key.
func SpendingByCategory(txs []model.Transaction, now time.Time) map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, t := range CurrentMonth(txs, now) {
		if t.Type != model.TypeExpense {
			continue
		}
		spending[t.Category] = spending[t.Category].Add(t.Amount)
	}
	return spending
}

// CategorySlice is one wedge of a category breakdown: the resolved display
// name and color plus the summed amount.
type CategorySlice struct {
	Name  string
	Color string
	Value decimal.Decimal
}

// GroupByCategory sums txs of the given type per category, resolves each
// category through the static table (unknown keys land on the catch-all
// entry), and sorts descending by value. Categories with no matching
// transactions are omitted; the order of equal values is unspecified.
func GroupByCategory(txs []model.Transaction, typ model.TransactionType) []CategorySlice {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type == typ {
			totals[t.Category] = totals[t.Category].Add(t.Amount)
		}
	}

	slices := make([]CategorySlice, 0, len(totals))
	for category, value := range totals {
		info := model.CategoryInfo(category, typ)
		slices = append(slices, CategorySlice{
			Name:  info.Name,
			Color: info.Color,
			Value: value,
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})
	return slices
}

// MonthPoint is one month of a chart series.
type MonthPoint struct {
	Month   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySeries produces exactly months entries ending at now's month,
// ordered oldest to newest. Months without transactions yield zero totals
// rather than being omitted. A non-positive month count yields an empty
// series.
func MonthlySeries(txs []model.Transaction, now time.Time, months int) []MonthPoint {
	if months <= 0 {
		return nil
	}
	series := make([]MonthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		key := MonthKey(m)

		var monthTxs []model.Transaction
		for _, t := range txs {
			if strings.HasPrefix(t.Date, key) {
				monthTxs = append(monthTxs, t)
			}
		}

		series = append(series, MonthPoint{
			Month:   MonthShort(m.Month()),
			Income:  TotalIncome(monthTxs),
			Expense: TotalExpense(monthTxs),
		})
	}
	return series
}
