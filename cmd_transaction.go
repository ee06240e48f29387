package main

import (
	"fmt"
	"time"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// transactionCommand holds the handlers for the transaction subcommands.
type transactionCommand struct {
	app *app
}

// newTransactionCmd creates the transaction command and its subcommands.
func newTransactionCmd(a *app) *cobra.Command {
	tc := transactionCommand{app: a}

	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Transaction management commands",
		Long:    `Commands for recording, editing, deleting and listing transactions.`,
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record an income or expense transaction.

Examples:
  pocketbook transaction add --type expense --amount 450 --category Food
  pocketbook transaction add --type income --amount 50000 --category Salary --date 2024-03-01`,
		Args: cobra.NoArgs,
		RunE: tc.add,
	}
	addTransactionFlags(addCmd)
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")
	addOutputFlag(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Long:  `Change any field of a transaction. Only the flags given are changed.`,
		Args:  cobra.ExactArgs(1),
		RunE:  tc.edit,
	}
	addTransactionFlags(editCmd)
	addOutputFlag(editCmd)

	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE:    tc.delete,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List transactions newest first, optionally filtered.

Examples:
  pocketbook transaction list --search food
  pocketbook transaction list --type income --from 2024-01-01 --to 2024-03-31`,
		Args: cobra.NoArgs,
		RunE: tc.list,
	}
	listCmd.Flags().String("search", "", "match category, note or amount")
	listCmd.Flags().String("from", "", "earliest date (YYYY-MM-DD)")
	listCmd.Flags().String("to", "", "latest date (YYYY-MM-DD)")
	listCmd.Flags().String("type", "", "expense or income")
	listCmd.Flags().String("month", "", "calendar month (YYYY-MM), overrides --from and --to")
	listCmd.Flags().Int("limit", 0, "show at most this many transactions")
	addOutputFlag(listCmd)

	cmd.AddCommand(addCmd, editCmd, deleteCmd, listCmd)
	return cmd
}

func addTransactionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", string(ledger.Expense), "expense or income")
	cmd.Flags().StringP("amount", "a", "", "amount, must be positive")
	cmd.Flags().StringP("category", "c", "", "category name")
	cmd.Flags().StringP("date", "d", "", "date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringP("note", "n", "", "optional note")
}

// inputFromFlags overlays the flags that were set onto base.
func inputFromFlags(cmd *cobra.Command, base ledger.TransactionInput) (ledger.TransactionInput, error) {
	flags := cmd.Flags()
	in := base

	if flags.Changed("type") || in.Type == "" {
		s, _ := flags.GetString("type")
		t, err := ledger.ParseType(s)
		if err != nil {
			return in, err
		}
		in.Type = t
	}
	if flags.Changed("amount") {
		s, _ := flags.GetString("amount")
		amount, err := decimal.NewFromString(s)
		if err != nil {
			return in, fmt.Errorf("%w: invalid amount %q", ledger.ErrInvalidInput, s)
		}
		in.Amount = amount
	}
	if flags.Changed("category") {
		in.Category, _ = flags.GetString("category")
	}
	if flags.Changed("date") {
		in.Date, _ = flags.GetString("date")
	}
	if flags.Changed("note") {
		in.Note, _ = flags.GetString("note")
	}
	return in, nil
}

func (tc transactionCommand) add(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	in, err := inputFromFlags(cmd, ledger.TransactionInput{Date: tc.app.now().Format(ledger.DateLayout)})
	if err != nil {
		return err
	}

	t, err := tc.app.store.AddTransaction(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	return tc.printOne(cmd, outputFormat, "Added", t)
}

func (tc transactionCommand) edit(cmd *cobra.Command, args []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	id := args[0]
	current, ok := tc.app.store.Transaction(id)
	if !ok {
		return fmt.Errorf("transaction %s not found", id)
	}

	in, err := inputFromFlags(cmd, ledger.TransactionInput{
		Type:     current.Type,
		Amount:   current.Amount,
		Category: current.Category,
		Date:     current.Date,
		Note:     current.Note,
	})
	if err != nil {
		return err
	}

	t, found, err := tc.app.store.EditTransaction(cmd.Context(), id, in)
	if err != nil {
		return fmt.Errorf("failed to edit transaction: %w", err)
	}
	if !found {
		return fmt.Errorf("transaction %s not found", id)
	}

	return tc.printOne(cmd, outputFormat, "Updated", t)
}

func (tc transactionCommand) delete(cmd *cobra.Command, args []string) error {
	deleted, err := tc.app.store.DeleteTransaction(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if !deleted {
		fmt.Fprintf(cmd.OutOrStdout(), "No transaction with id %s\n", args[0])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", args[0])
	return nil
}

func (tc transactionCommand) list(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	txs := analytics.Filter(tc.app.store.Transactions(), criteria)
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, txs)
	default:
		if len(txs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No transactions found")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), transactionsTable(txs, tc.app.currency()))
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d transaction(s)\n", len(txs))
		return nil
	}
}

func criteriaFromFlags(cmd *cobra.Command) (analytics.Criteria, error) {
	var c analytics.Criteria
	c.Search, _ = cmd.Flags().GetString("search")
	c.DateFrom, _ = cmd.Flags().GetString("from")
	c.DateTo, _ = cmd.Flags().GetString("to")

	if s, _ := cmd.Flags().GetString("type"); s != "" {
		t, err := ledger.ParseType(s)
		if err != nil {
			return c, err
		}
		c.Type = t
	}

	if s, _ := cmd.Flags().GetString("month"); s != "" {
		month, err := time.ParseInLocation("2006-01", s, time.Local)
		if err != nil {
			return c, fmt.Errorf("%w: month %q is not YYYY-MM", ledger.ErrInvalidInput, s)
		}
		period := analytics.NewPeriod(month, analytics.PeriodMonth).Criteria()
		c.DateFrom, c.DateTo = period.DateFrom, period.DateTo
	}
	return c, nil
}

func (tc transactionCommand) printOne(cmd *cobra.Command, outputFormat, verb string, t ledger.Transaction) error {
	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd, t)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s in %s on %s (id %s)\n",
		verb, t.Type, ledger.FormatAmount(t.Amount, tc.app.currency()), t.Category, t.Date, t.ID)
	return nil
}

func transactionsTable(txs []ledger.Transaction, currency string) string {
	tbl := createStyledTable("ID", "Date", "Type", "Category", "Amount", "Note")
	for _, t := range txs {
		amount := ledger.FormatAmount(t.Amount, currency)
		if t.Type == ledger.Expense {
			amount = "-" + amount
		}
		tbl.Row(t.ID, t.Date, titleCaser.String(string(t.Type)), t.Category, amount, t.Note)
	}
	return tbl.Render()
}
