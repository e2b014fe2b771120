package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pradana/duit/internal/cli"
	"github.com/pradana/duit/internal/export"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalFundCmd())
	cmd.AddCommand(goalRmCmd())
	return cmd
}

func goalAddCmd() *cobra.Command {
	var deadlineFlag string

	cmd := &cobra.Command{
		Use:   "add <name> <target>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := parsePositiveAmount(args[1])
			if err != nil {
				return err
			}
			deadline := ""
			if deadlineFlag != "" {
				deadline, err = parseDate(deadlineFlag)
				if err != nil {
					return err
				}
			}

			tracker, store := initTracker(ctx)
			defer closeStore(store)

			g := tracker.AddGoal(ctx, args[0], target, deadline)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal created: %s (target %s)", g.Name, export.FormatCurrency(g.TargetAmount)))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&deadlineFlag, "deadline", "", "optional deadline, YYYY-MM-DD")
	return cmd
}

func goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			goals := tracker.Goals()
			if len(goals) == 0 {
				fmt.Println(cli.FormatSubtle("No savings goals yet.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.FormatTitle("Savings Goals")) //nolint:forbidigo // User-facing output
			for _, g := range goals {
				line := fmt.Sprintf("%s  %s / %s (%.0f%%)", g.Name,
					export.FormatCurrency(g.CurrentAmount), export.FormatCurrency(g.TargetAmount), g.Progress()*100)
				if g.Completed() {
					line += "  " + cli.FormatSuccess("completed")
				}
				if g.Deadline != "" {
					line += "  " + cli.FormatSubtle("by "+export.FormatDate(g.Deadline))
				}
				fmt.Println(line)                                //nolint:forbidigo // User-facing output
				fmt.Println(cli.FormatSubtle("    id: " + g.ID)) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}
}

func goalFundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <id> <amount>",
		Short: "Contribute to a goal",
		Long: `Contribute to a savings goal. The contribution also records a matching
expense transaction in the savings category, so the balance reflects the
money set aside.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parsePositiveAmount(args[1])
			if err != nil {
				return err
			}

			tracker, store := initTracker(ctx)
			defer closeStore(store)

			g, err := tracker.ContributeToGoal(ctx, args[0], amount)
			if err != nil {
				return fmt.Errorf("failed to fund goal: %w", err)
			}

			msg := fmt.Sprintf("Added %s to %s (now %s / %s)", export.FormatCurrency(amount), g.Name,
				export.FormatCurrency(g.CurrentAmount), export.FormatCurrency(g.TargetAmount))
			fmt.Println(cli.FormatSuccess(msg)) //nolint:forbidigo // User-facing output
			if g.Completed() {
				fmt.Println(cli.FormatSuccess("Goal reached! 🎉")) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}
}

func goalRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			tracker.DeleteGoal(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Goal deleted")) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
