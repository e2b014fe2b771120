package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pradana/duit/internal/cli"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the UI theme",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			fmt.Printf("Theme: %s\n", tracker.Theme()) //nolint:forbidigo // User-facing output
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tracker, store := initTracker(ctx)
			defer closeStore(store)

			theme := tracker.ToggleTheme(ctx)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Theme is now %s", theme))) //nolint:forbidigo // User-facing output
			return nil
		},
	})

	return cmd
}
