package main

import (
	"fmt"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// budgetCommand holds the handlers for the budget subcommands.
type budgetCommand struct {
	app *app
}

// newBudgetCmd creates the budget command and its subcommands.
func newBudgetCmd(a *app) *cobra.Command {
	bc := budgetCommand{app: a}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Monthly budget commands",
		Long:  `Commands for viewing and setting the overall monthly budget and per-category limits.`,
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show this month's budget status",
		Args:  cobra.NoArgs,
		RunE:  bc.get,
	}
	addOutputFlag(getCmd)

	setCmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the overall monthly budget",
		Long:  `Set the overall monthly spending limit. Zero turns budget tracking off.`,
		Args:  cobra.ExactArgs(1),
		RunE:  bc.set,
	}

	categoryCmd := &cobra.Command{
		Use:   "category <name> <amount>",
		Short: "Set a monthly limit for one expense category",
		Long:  `Set a monthly limit for one expense category. Zero removes the limit.`,
		Args:  cobra.ExactArgs(2),
		RunE:  bc.category,
	}

	cmd.AddCommand(getCmd, setCmd, categoryCmd)
	return cmd
}

func parseBudgetAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", ledger.ErrInvalidInput, s)
	}
	return amount, nil
}

func (bc budgetCommand) get(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	j := calculateSummaryData(bc.app.store.State(), bc.app.now(), false).ToJSON()

	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd, struct {
			Budget     *BudgetJSON          `json:"budget"`
			Categories []CategoryBudgetJSON `json:"categories"`
		}{j.Budget, j.CategoryBudget})
	}

	out := cmd.OutOrStdout()
	if j.Budget == nil {
		fmt.Fprintln(out, "No monthly budget set. Set one with `pocketbook budget set <amount>`.")
	} else {
		fmt.Fprintf(out, "Monthly budget: %s\nSpent:          %s (%s%%)\n%s\n",
			j.Budget.Budget, j.Budget.Spent, j.Budget.Percentage, j.Budget.Message)
	}

	if len(j.CategoryBudget) > 0 {
		tbl := createStyledTable("Category", "Budget", "Spent", "Used", "Status")
		for _, c := range j.CategoryBudget {
			tbl.Row(c.Category, c.Budget, c.Spent, c.Percentage+"%", c.Message)
		}
		fmt.Fprintln(out, tbl.Render())
	}
	return nil
}

func (bc budgetCommand) set(cmd *cobra.Command, args []string) error {
	amount, err := parseBudgetAmount(args[0])
	if err != nil {
		return err
	}
	if err := bc.app.store.SetMonthlyBudget(cmd.Context(), amount); err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}

	if amount.IsZero() {
		fmt.Fprintln(cmd.OutOrStdout(), "Monthly budget cleared")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Monthly budget set to %s\n", ledger.FormatAmount(amount, bc.app.currency()))
	return nil
}

func (bc budgetCommand) category(cmd *cobra.Command, args []string) error {
	amount, err := parseBudgetAmount(args[1])
	if err != nil {
		return err
	}
	if err := bc.app.store.SetCategoryBudget(cmd.Context(), args[0], amount); err != nil {
		return fmt.Errorf("failed to set category budget: %w", err)
	}

	if amount.IsZero() {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed the limit for %s\n", args[0])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Limit for %s set to %s\n", args[0], ledger.FormatAmount(amount, bc.app.currency()))
	return nil
}
