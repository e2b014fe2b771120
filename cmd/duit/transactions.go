package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pradana/duit/internal/cli"
	"github.com/pradana/duit/internal/export"
	"github.com/pradana/duit/internal/finance"
	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/repository"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and manage transactions",
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txRmCmd())
	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		amountFlag      string
		typeFlag        string
		categoryFlag    string
		descriptionFlag string
		dateFlag        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Example: `  duit tx add --amount 50000 --type expense --category food --description "nasi goreng"
  duit tx add --amount 5000000 --type income --category salary --date 2026-08-25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(amountFlag)
			if err != nil {
				return err
			}
			typ, err := parseType(typeFlag)
			if err != nil {
				return err
			}
			category, err := parseCategory(categoryFlag, typ)
			if err != nil {
				return err
			}
			if dateFlag == "" {
				dateFlag = today()
			}
			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			tracker, store := initTracker(ctx)
			defer closeStore(store)

			txn := tracker.AddTransaction(ctx, finance.NewTransaction{
				Amount:      amount,
				Type:        typ,
				Category:    category,
				Description: descriptionFlag,
				Date:        date,
			})

			info := model.CategoryInfo(txn.Category, txn.Type)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s)", txn.Type, export.FormatCurrency(txn.Amount), info.Name))) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&categoryFlag, "category", "other", "category key")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "free-text note")
	cmd.Flags().StringVar(&dateFlag, "date", "", "transaction date, YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func txListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			txs := tracker.Transactions()
			if len(txs) == 0 {
				fmt.Println(cli.FormatSubtle("No transactions yet.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.FormatTitle("Transactions")) //nolint:forbidigo // User-facing output
			for _, t := range txs {
				info := model.CategoryInfo(t.Category, t.Type)
				sign := "-"
				if t.Type == model.TypeIncome {
					sign = "+"
				}
				line := fmt.Sprintf("%s  %s%s  %s", export.FormatDate(t.Date), sign, export.FormatCurrency(t.Amount), info.Name)
				if t.Description != "" {
					line += "  " + cli.FormatSubtle(t.Description)
				}
				fmt.Println(line)                                 //nolint:forbidigo // User-facing output
				fmt.Println(cli.FormatSubtle("    id: " + t.ID)) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}
}

func txEditCmd() *cobra.Command {
	var (
		amountFlag      string
		typeFlag        string
		categoryFlag    string
		descriptionFlag string
		dateFlag        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of an existing transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var patch repository.TransactionPatch

			// Only flags the user actually set make it into the patch.
			if cmd.Flags().Changed("amount") {
				amount, err := parseAmount(amountFlag)
				if err != nil {
					return err
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("type") {
				typ, err := parseType(typeFlag)
				if err != nil {
					return err
				}
				patch.Type = &typ
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &descriptionFlag
			}
			if cmd.Flags().Changed("date") {
				date, err := parseDate(dateFlag)
				if err != nil {
					return err
				}
				patch.Date = &date
			}

			tracker, store := initTracker(ctx)
			defer closeStore(store)

			// A category change is checked against the type the transaction
			// will have after the edit.
			if cmd.Flags().Changed("category") {
				category, err := parseCategory(categoryFlag, editedType(tracker.Transactions(), args[0], patch))
				if err != nil {
					return err
				}
				patch.Category = &category
			}

			tracker.UpdateTransaction(ctx, args[0], patch)
			fmt.Println(cli.FormatSuccess("Transaction updated")) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "new amount")
	cmd.Flags().StringVar(&typeFlag, "type", "", "new type")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "new category key")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "new description")
	cmd.Flags().StringVar(&dateFlag, "date", "", "new date, YYYY-MM-DD")
	return cmd
}

func txRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			tracker.DeleteTransaction(ctx, args[0])
			fmt.Println(cli.FormatSuccess("Transaction deleted")) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
