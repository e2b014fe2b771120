// Package model defines the core entities of the duit finance tracker.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from
// the balance.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single recorded money movement.
//
// Date is kept as an ISO "YYYY-MM-DD" string: month bucketing works by
// string-prefix matching on the "YYYY-MM" key, and a malformed date simply
// never matches any bucket.
type Transaction struct {
	CreatedAt   time.Time       `json:"createdAt"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
}
