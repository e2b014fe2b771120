package ledger

import "time"

// Indonesian short month labels, indexed by time.Month-1.
var shortMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// MonthShort returns the localized short label for m.
func MonthShort(m time.Month) string {
	return shortMonths[m-1]
}
