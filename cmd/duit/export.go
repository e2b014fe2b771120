package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pradana/duit/internal/cli"
	"github.com/pradana/duit/internal/common"
	"github.com/pradana/duit/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		formatFlag string
		outFlag    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV or a monthly text report",
		Example: `  duit export --format csv --out transaksi.csv
  duit export --format report`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			txs := tracker.Transactions()

			var content string
			switch formatFlag {
			case "csv":
				content = export.CSV(txs)
			case "report":
				content = export.MonthlyReport(txs, time.Now())
			default:
				return common.NewUserError(fmt.Sprintf("format %q must be csv or report", formatFlag), common.ErrInvalidConfig)
			}

			if outFlag == "" {
				fmt.Println(content) //nolint:forbidigo // User-facing output
				return nil
			}

			if err := os.WriteFile(outFlag, []byte(content), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFlag, err)
			}
			fmt.Println(cli.FormatSuccess("Exported to " + outFlag)) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "csv", "export format (csv, report)")
	cmd.Flags().StringVar(&outFlag, "out", "", "output file (default: stdout)")
	return cmd
}
