package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pradana/duit/internal/cli"
	"github.com/pradana/duit/internal/common"
	"github.com/pradana/duit/internal/export"
	"github.com/pradana/duit/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category monthly budgets",
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetRmCmd())
	return cmd
}

func budgetSetCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set the spending ceiling for a category",
		Long: `Set the spending ceiling for an expense category. Setting a budget for a
category that already has one replaces it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category, err := parseCategory(args[0], model.TypeExpense)
			if err != nil {
				return err
			}
			limit, err := parsePositiveAmount(args[1])
			if err != nil {
				return err
			}
			period := model.BudgetPeriod(periodFlag)
			if period != model.PeriodMonthly && period != model.PeriodWeekly {
				return common.NewUserError(fmt.Sprintf("period %q must be monthly or weekly", periodFlag), common.ErrInvalidPeriod)
			}

			tracker, store := initTracker(ctx)
			defer closeStore(store)

			b := tracker.AddBudget(ctx, category, limit, period)
			info := model.CategoryInfo(b.Category, model.TypeExpense)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget set: %s ≤ %s per %s", info.Name, export.FormatCurrency(b.Limit), b.Period))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&periodFlag, "period", string(model.PeriodMonthly), "budget period (monthly, weekly)")
	return cmd
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with this month's spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			statuses := tracker.BudgetStatuses(time.Now())
			if len(statuses) == 0 {
				fmt.Println(cli.FormatSubtle("No budgets yet.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.FormatTitle("Budgets")) //nolint:forbidigo // User-facing output
			for _, s := range statuses {
				info := model.CategoryInfo(s.Budget.Category, model.TypeExpense)
				line := fmt.Sprintf("%s  %s / %s (%.0f%%)", info.Name,
					export.FormatCurrency(s.Spent), export.FormatCurrency(s.Budget.Limit), s.Percentage)

				switch {
				case s.OverBudget:
					line += "  " + cli.FormatError("over budget")
				case s.NearLimit:
					line += "  " + cli.FormatWarning("near limit")
				}
				fmt.Println(line)                                        //nolint:forbidigo // User-facing output
				fmt.Println(cli.FormatSubtle("    id: " + s.Budget.ID)) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}
}

func budgetRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			tracker.DeleteBudget(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Budget deleted")) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
