package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/backup"
	"github.com/spf13/cobra"
)

// backupCommand holds the handlers for the backup subcommands.
type backupCommand struct {
	app *app
}

// newBackupCmd creates the backup command and its subcommands.
func newBackupCmd(a *app) *cobra.Command {
	bc := backupCommand{app: a}

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export, import and CSV commands",
		Long:  `Commands for writing JSON backups, restoring them and exporting transactions as CSV.`,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of everything",
		Long: `Write a JSON backup of transactions, categories and settings.

The default file name is expense_tracker_backup_YYYY-MM-DD.json in the current
directory. Use --file - to write to stdout.`,
		Args: cobra.NoArgs,
		RunE: bc.export,
	}
	exportCmd.Flags().StringP("file", "f", "", "output path, - for stdout")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a JSON backup",
		Long: `Restore a JSON backup.

In merge mode transactions and categories that are not already present are
added and settings are kept. In replace mode local transactions and
categories are discarded and settings from the backup are applied.`,
		Args: cobra.ExactArgs(1),
		RunE: bc.importFile,
	}
	importCmd.Flags().StringP("mode", "m", string(backup.Merge), "merge or replace")
	importCmd.Flags().BoolP("yes", "y", false, "replace without asking")
	addOutputFlag(importCmd)

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Export transactions as CSV",
		Long:  `Export transactions, optionally filtered, as CSV with Date, Type, Category, Amount and Note columns.`,
		Args:  cobra.NoArgs,
		RunE:  bc.csv,
	}
	csvCmd.Flags().StringP("file", "f", backup.CSVFilename, "output path, - for stdout")
	csvCmd.Flags().String("search", "", "match category, note or amount")
	csvCmd.Flags().String("from", "", "earliest date (YYYY-MM-DD)")
	csvCmd.Flags().String("to", "", "latest date (YYYY-MM-DD)")
	csvCmd.Flags().String("type", "", "expense or income")
	csvCmd.Flags().String("month", "", "calendar month (YYYY-MM), overrides --from and --to")

	cmd.AddCommand(exportCmd, importCmd, csvCmd)
	return cmd
}

// writeTo runs write against path, or against stdout when path is "-".
func writeTo(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (bc backupCommand) export(cmd *cobra.Command, _ []string) error {
	now := bc.app.now()
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = backup.Filename(now)
	}

	f := backup.Export(bc.app.store.State(), now)
	if err := writeTo(cmd, path, func(w io.Writer) error { return backup.Encode(w, f) }); err != nil {
		return err
	}

	if path != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transaction(s) to %s\n", len(f.Transactions), path)
	}
	return nil
}

func (bc backupCommand) importFile(cmd *cobra.Command, args []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := backup.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer in.Close()

	f, err := backup.Decode(in)
	if err != nil {
		return err
	}
	if err := backup.Validate(f); err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); mode == backup.Replace && !yes {
		ok, err := bc.app.ask("Replace all local transactions and categories with the backup?")
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled")
			return nil
		}
	}

	res, err := backup.Import(cmd.Context(), bc.app.store, f, mode)
	if err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	if outputFormat == jsonOutputFormat {
		return outputJSON(cmd, res)
	}
	tbl := createStyledTable("", "Added", "Skipped")
	tbl.Row("Transactions", fmt.Sprint(res.TransactionsAdded), fmt.Sprint(res.TransactionsSkipped))
	tbl.Row("Categories", fmt.Sprint(res.CategoriesAdded), fmt.Sprint(res.CategoriesSkipped))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s in %s mode\n%s\n", args[0], res.Mode, tbl.Render())
	if res.SettingsApplied {
		fmt.Fprintln(cmd.OutOrStdout(), "Settings restored from the backup")
	}
	return nil
}

func (bc backupCommand) csv(cmd *cobra.Command, _ []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("file")

	// an unfiltered export keeps collection order
	txs := bc.app.store.Transactions()
	if !criteria.IsZero() {
		txs = analytics.Filter(txs, criteria)
	}
	if err := writeTo(cmd, path, func(w io.Writer) error { return backup.WriteCSV(w, txs) }); err != nil {
		return err
	}

	if path != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transaction(s) to %s\n", len(txs), path)
	}
	return nil
}
