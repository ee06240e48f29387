package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/spf13/cobra"
)

// categoriesCommand encapsulates the dependencies for the categories commands.
type categoriesCommand struct {
	app *app
}

// newCategoriesCmd creates the categories command and its subcommands.
func newCategoriesCmd(a *app) *cobra.Command {
	cc := categoriesCommand{app: a}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category management commands",
		Long:  `Commands for listing and managing expense and income categories.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `List all categories with their IDs and details.`,
		Args:  cobra.NoArgs,
		RunE:  cc.list,
	}
	listCmd.Flags().String("type", "", "only list expense or income categories")
	addOutputFlag(listCmd)

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE:  cc.add,
	}
	addCmd.Flags().StringP("type", "t", string(ledger.Expense), "expense or income")

	renameCmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Long:  `Rename a category. Existing transactions keep the name they were recorded with.`,
		Args:  cobra.ExactArgs(2),
		RunE:  cc.rename,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom category",
		Long:  `Delete a custom category. Built-in categories cannot be deleted.`,
		Args:  cobra.ExactArgs(1),
		RunE:  cc.delete,
	}

	cmd.AddCommand(listCmd, addCmd, renameCmd, deleteCmd)
	return cmd
}

func (cc categoriesCommand) list(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	set := cc.app.store.CategorySet()
	if s, _ := cmd.Flags().GetString("type"); s != "" {
		t, err := ledger.ParseType(s)
		if err != nil {
			return err
		}
		if t == ledger.Income {
			set.Expense = nil
		} else {
			set.Income = nil
		}
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, set)
	default:
		tbl := createStyledTable("ID", "Name", "Type", "Built-in")
		for _, t := range []ledger.Type{ledger.Expense, ledger.Income} {
			cats := set.Of(t)
			// Sort categories by name for consistent output
			slices.SortFunc(cats, func(a, b ledger.Category) int {
				return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			})
			for _, c := range cats {
				builtIn := ""
				if c.IsDefault {
					builtIn = "yes"
				}
				tbl.Row(c.ID, c.Name, titleCaser.String(string(t)), builtIn)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
		return nil
	}
}

func (cc categoriesCommand) add(cmd *cobra.Command, args []string) error {
	s, _ := cmd.Flags().GetString("type")
	t, err := ledger.ParseType(s)
	if err != nil {
		return err
	}

	c, err := cc.app.store.AddCategory(cmd.Context(), args[0], t)
	if err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s category %q (id %s)\n", t, c.Name, c.ID)
	return nil
}

func (cc categoriesCommand) rename(cmd *cobra.Command, args []string) error {
	found, err := cc.app.store.UpdateCategory(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to rename category: %w", err)
	}
	if !found {
		return fmt.Errorf("category %s not found", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Renamed category %s to %q\n", args[0], strings.TrimSpace(args[1]))
	return nil
}

func (cc categoriesCommand) delete(cmd *cobra.Command, args []string) error {
	found, err := cc.app.store.DeleteCategory(cmd.Context(), args[0])
	if errors.Is(err, ledger.ErrProtected) {
		return fmt.Errorf("category %s is built in and cannot be deleted", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if !found {
		return fmt.Errorf("category %s not found", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", args[0])
	return nil
}
