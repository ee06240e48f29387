package main

import (
	"fmt"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/spf13/cobra"
)

// monthlyJSON is one month of the monthly series in JSON output.
type monthlyJSON struct {
	Month   string `json:"month"`
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

type cashFlowJSON struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	Balance string `json:"balance"`
}

// newSeriesCmd creates the series command with its monthly and cashflow views.
func newSeriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Time series of income, expense and balance",
		Long:  `Commands for the monthly income and expense series and the running cash flow.`,
	}

	monthlyCmd := &cobra.Command{
		Use:   "monthly",
		Short: "Income and expense per calendar month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}
			months, _ := cmd.Flags().GetInt("months")

			series := analytics.BuildMonthlySeries(a.store.Transactions(), months, a.now())
			currency := a.currency()

			rows := make([]monthlyJSON, 0, series.Len())
			for i := range series.Len() {
				rows = append(rows, monthlyJSON{
					Month:   series.Keys[i],
					Label:   series.Labels[i],
					Income:  ledger.FormatAmount(series.Income[i], currency),
					Expense: ledger.FormatAmount(series.Expense[i], currency),
				})
			}

			if outputFormat == jsonOutputFormat {
				return outputJSON(cmd, rows)
			}
			tbl := createStyledTable("Month", "Income", "Expense")
			for _, r := range rows {
				tbl.Row(r.Label, r.Income, r.Expense)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
	monthlyCmd.Flags().Int("months", analytics.DefaultMonths, "number of months ending with the current one")
	addOutputFlag(monthlyCmd)

	cashflowCmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Running balance over recent days",
		Long:  `Show the running balance sampled every few days over the recent window.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")

			points := analytics.CashFlowSeries(a.store.Transactions(), days, a.now())
			currency := a.currency()

			rows := make([]cashFlowJSON, 0, len(points))
			for _, p := range points {
				rows = append(rows, cashFlowJSON{
					Date:    p.Date,
					Label:   p.Label,
					Balance: ledger.FormatAmount(p.Balance, currency),
				})
			}

			if outputFormat == jsonOutputFormat {
				return outputJSON(cmd, rows)
			}
			tbl := createStyledTable("Day", "Balance")
			for _, r := range rows {
				tbl.Row(r.Label, r.Balance)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}
	cashflowCmd.Flags().Int("days", analytics.DefaultCashFlowDays, "length of the window in days")
	addOutputFlag(cashflowCmd)

	cmd.AddCommand(monthlyCmd, cashflowCmd)
	return cmd
}
