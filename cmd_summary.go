package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// newSummaryCmd creates the summary command.
func newSummaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show balance, totals and budget status",
		Long: `Show the balance, total income and expense, spending this week and month,
the top spending category and the budget status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := validateOutputFormat(cmd)
			if err != nil {
				return err
			}
			showBreakdown, _ := cmd.Flags().GetBool("breakdown")

			data := calculateSummaryData(a.store.State(), a.now(), showBreakdown)

			switch outputFormat {
			case jsonOutputFormat:
				return outputJSON(cmd, data.ToJSON())
			default:
				outputSummaryTable(cmd.OutOrStdout(), data)
				return nil
			}
		},
	}
	addOutputFlag(cmd)
	cmd.Flags().Bool("breakdown", false, "Show spending by category")
	return cmd
}

func outputSummaryTable(w io.Writer, data *SummaryData) {
	j := data.ToJSON()

	fmt.Fprintf(w, "Balance: %s\n\n", j.Balance)
	fmt.Fprintf(w, "Income:            %s\n", j.Income)
	fmt.Fprintf(w, "Expense:           %s\n", j.Expense)
	fmt.Fprintf(w, "Spent this week:   %s\n", j.WeeklySpending)
	fmt.Fprintf(w, "Spent this month:  %s\n", j.MonthlySpend)
	if j.TopCategory != "" {
		fmt.Fprintf(w, "Top category:      %s\n", j.TopCategory)
	}

	if j.Budget != nil {
		fmt.Fprintf(w, "\nMonthly budget: %s (%s%% used)\n  %s\n", j.Budget.Budget, j.Budget.Percentage, j.Budget.Message)
	}
	if len(j.CategoryBudget) > 0 {
		tbl := createStyledTable("Category", "Budget", "Spent", "Used", "Status")
		for _, c := range j.CategoryBudget {
			tbl.Row(c.Category, c.Budget, c.Spent, c.Percentage+"%", c.Message)
		}
		fmt.Fprintln(w, tbl.Render())
	}

	if len(j.Breakdown) > 0 {
		fmt.Fprintln(w, "\nSPENDING BY CATEGORY:")
		tbl := createStyledTable("Category", "Amount", "Share")
		for _, c := range j.Breakdown {
			tbl.Row(c.Category, c.Amount, c.Percent+"%")
		}
		fmt.Fprintln(w, tbl.Render())
	}

	if len(data.Summary.Recent) > 0 {
		fmt.Fprintln(w, "\nRECENT:")
		fmt.Fprintln(w, transactionsTable(data.Summary.Recent, data.Currency))
	} else {
		fmt.Fprintln(w, "\nNo transactions yet. Add one with `pocketbook transaction add`.")
	}
}

