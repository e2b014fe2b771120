// Package export produces the CSV and text-report renderings of a
// transaction snapshot. Both are pure string producers; writing the result
// anywhere is the caller's concern.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pradana/duit/internal/ledger"
)

// Indonesian long month names, indexed by time.Month-1.
var longMonths = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthLong returns the localized full name for m.
func MonthLong(m time.Month) string {
	return longMonths[m-1]
}

// FormatCurrency renders an amount as Indonesian rupiah: no fraction digits,
// dot thousand separators, e.g. Rp1.500.000.
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	digits := amount.Abs().Round(0).String()

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("Rp")
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(".")
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatDate renders an ISO date as e.g. "10 Jan 2024". A date that does not
// parse is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s %d", t.Day(), ledger.MonthShort(t.Month()), t.Year())
}
