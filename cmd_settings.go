package main

import (
	"fmt"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/spf13/cobra"
)

// settingsJSON is the settings record as shown by `settings get`.
type settingsJSON struct {
	Currency        string            `json:"currency"`
	Theme           string            `json:"theme"`
	MonthlyBudget   string            `json:"monthly_budget"`
	CategoryBudgets map[string]string `json:"category_budgets,omitempty"`
}

// newSettingsCmd creates the settings command and its subcommands.
func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Display and change settings",
		Long:  `Commands for the display currency, theme and other stored settings.`,
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}

			s := a.store.Settings()
			out := settingsJSON{
				Currency:      s.Currency,
				Theme:         s.Theme,
				MonthlyBudget: ledger.FormatAmount(s.MonthlyBudget, s.Currency),
			}
			if len(s.CategoryBudgets) > 0 {
				out.CategoryBudgets = make(map[string]string, len(s.CategoryBudgets))
				for name, limit := range s.CategoryBudgets {
					out.CategoryBudgets[name] = ledger.FormatAmount(limit, s.Currency)
				}
			}

			if outputFormat == jsonOutputFormat {
				return outputJSON(cmd, out)
			}
			tbl := createStyledTable("Setting", "Value")
			tbl.Row("Currency", out.Currency)
			tbl.Row("Theme", out.Theme)
			tbl.Row("Monthly Budget", out.MonthlyBudget)
			tbl.Row("Category Limits", fmt.Sprint(len(out.CategoryBudgets)))
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
	addOutputFlag(getCmd)

	currencyCmd := &cobra.Command{
		Use:   "currency <code>",
		Short: "Set the display currency",
		Long:  `Set the display currency. Amounts are stored unchanged and converted for display.`,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			var codes []string
			for _, c := range ledger.Currencies() {
				codes = append(codes, c.Code)
			}
			return codes, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.SetCurrency(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to set currency: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Currency set to %s\n", a.currency())
			return nil
		},
	}

	themeCmd := &cobra.Command{
		Use:       "theme <dark|light>",
		Short:     "Set the dashboard theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{ledger.ThemeDark, ledger.ThemeLight},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.SetTheme(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to set theme: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", a.store.Settings().Theme)
			return nil
		},
	}

	cmd.AddCommand(getCmd, currencyCmd, themeCmd)
	return cmd
}
