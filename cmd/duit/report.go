package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pradana/duit/internal/cli"
	"github.com/pradana/duit/internal/export"
	"github.com/pradana/duit/internal/ledger"
	"github.com/pradana/duit/internal/model"
)

func reportCmd() *cobra.Command {
	var monthsFlag int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show balance, monthly totals, and category breakdowns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			months, err := parseMonths(monthsFlag)
			if err != nil {
				return err
			}

			tracker, store := initTracker(ctx)
			defer closeStore(store)

			txs := tracker.Transactions()
			now := time.Now()
			monthly := ledger.CurrentMonth(txs, now)

			fmt.Println(cli.FormatTitle("Ringkasan Keuangan"))                                                             //nolint:forbidigo // User-facing output
			fmt.Printf("Total Saldo: %s\n", export.FormatCurrency(ledger.Balance(txs)))                                    //nolint:forbidigo // User-facing output
			fmt.Printf("Pemasukan Bulan Ini: %s\n", export.FormatCurrency(ledger.TotalIncome(monthly)))                    //nolint:forbidigo // User-facing output
			fmt.Printf("Pengeluaran Bulan Ini: %s\n\n", export.FormatCurrency(ledger.TotalExpense(monthly)))               //nolint:forbidigo // User-facing output

			if breakdown := ledger.GroupByCategory(monthly, model.TypeExpense); len(breakdown) > 0 {
				fmt.Println(cli.FormatTitle("Pengeluaran per Kategori")) //nolint:forbidigo // User-facing output
				for _, s := range breakdown {
					fmt.Printf("%-14s %s\n", s.Name, export.FormatCurrency(s.Value)) //nolint:forbidigo // User-facing output
				}
				fmt.Println() //nolint:forbidigo // User-facing output
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Tren %d Bulan", months))) //nolint:forbidigo // User-facing output
			for _, p := range ledger.MonthlySeries(txs, now, months) {
				fmt.Printf("%-4s masuk %-14s keluar %s\n", p.Month,
					export.FormatCurrency(p.Income), export.FormatCurrency(p.Expense)) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&monthsFlag, "months", 6, "number of months in the trend series")
	return cmd
}
