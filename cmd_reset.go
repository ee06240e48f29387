package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newResetCmd creates the reset command, which wipes the ledger.
func newResetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data and start over",
		Long:  `Delete every transaction, custom category and setting and restore the defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				ok, err := a.ask("Delete all data? This cannot be undone.")
				if err != nil {
					return fmt.Errorf("confirmation failed: %w", err)
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}

			if err := a.store.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	return cmd
}
