package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pradana/duit/internal/ledger"
	"github.com/pradana/duit/internal/model"
)

const reportRule = "=================================================="

// MonthlyReport renders the formatted text summary for the month containing
// now: overall balance, the month's income and expense totals, and the
// month's transactions newest-first.
func MonthlyReport(txs []model.Transaction, now time.Time) string {
	monthly := ledger.CurrentMonth(txs, now)
	income := ledger.TotalIncome(monthly)
	expense := ledger.TotalExpense(monthly)
	balance := ledger.Balance(txs)

	var b strings.Builder
	fmt.Fprintf(&b, "LAPORAN KEUANGAN - %s %d\n", strings.ToUpper(MonthLong(now.Month())), now.Year())
	b.WriteString(reportRule + "\n\n")
	fmt.Fprintf(&b, "Total Saldo: %s\n", FormatCurrency(balance))
	fmt.Fprintf(&b, "Pemasukan Bulan Ini: %s\n", FormatCurrency(income))
	fmt.Fprintf(&b, "Pengeluaran Bulan Ini: %s\n", FormatCurrency(expense))
	fmt.Fprintf(&b, "Selisih: %s\n\n", FormatCurrency(income.Sub(expense)))
	b.WriteString(reportRule + "\n")
	b.WriteString("DETAIL TRANSAKSI\n")
	b.WriteString(reportRule + "\n\n")

	if len(monthly) == 0 {
		b.WriteString("Tidak ada transaksi bulan ini.\n")
	} else {
		// Newest first. ISO date strings sort lexicographically, so plain
		// string comparison suffices. Copy before sorting: the input
		// snapshot must stay untouched.
		sorted := make([]model.Transaction, len(monthly))
		copy(sorted, monthly)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date > sorted[j].Date
		})

		for _, t := range sorted {
			info := model.CategoryInfo(t.Category, t.Type)
			sign := "-"
			if t.Type == model.TypeIncome {
				sign = "+"
			}
			fmt.Fprintf(&b, "%s | %s\n", FormatDate(t.Date), info.Name)
			fmt.Fprintf(&b, "%s%s", sign, FormatCurrency(t.Amount))
			if t.Description != "" {
				fmt.Fprintf(&b, " - %s", t.Description)
			}
			b.WriteString("\n\n")
		}
	}

	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Diekspor pada: %s\n", time.Now().Format("2/1/2006, 15.04.05"))
	return b.String()
}
