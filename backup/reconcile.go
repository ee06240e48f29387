package backup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/charmbracelet/log"
)

type Mode string

const (
	// Merge adds what is new in the backup and keeps everything local.
	Merge Mode = "merge"
	// Replace discards local transactions and categories in favor of the
	// backup.
	Replace Mode = "replace"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Merge, Replace:
		return m, nil
	default:
		return "", fmt.Errorf("unknown import mode %q, expected %q or %q", s, Merge, Replace)
	}
}

// Result counts what an import did.
type Result struct {
	Mode                Mode `json:"mode"`
	TransactionsAdded   int  `json:"transactionsAdded"`
	TransactionsSkipped int  `json:"transactionsSkipped"`
	CategoriesAdded     int  `json:"categoriesAdded"`
	CategoriesSkipped   int  `json:"categoriesSkipped"`
	SettingsApplied     bool `json:"settingsApplied"`
}

// Reconcile computes the state that importing f into current would produce.
// It does not validate f and it does not touch current.
func Reconcile(current ledger.State, f File, mode Mode) (ledger.State, Result, error) {
	switch mode {
	case Replace:
		return replace(current, f), resultOf(mode, f), nil
	case Merge:
		st, res := merge(current, f)
		return st, res, nil
	default:
		return ledger.State{}, Result{}, fmt.Errorf("unknown import mode %q", mode)
	}
}

func resultOf(mode Mode, f File) Result {
	r := Result{Mode: mode, TransactionsAdded: len(f.Transactions), SettingsApplied: f.Settings != nil}
	if f.Categories != nil {
		r.CategoriesAdded = len(f.Categories.Expense) + len(f.Categories.Income)
	}
	return r
}

func replace(current ledger.State, f File) ledger.State {
	next := ledger.State{
		Transactions: append([]ledger.Transaction{}, f.Transactions...),
		Categories:   ledger.DefaultCategories(),
		Settings:     current.Settings,
	}
	if f.Categories != nil {
		next.Categories = typed(f.Categories.Clone())
	}
	if f.Settings != nil {
		next.Settings = f.Settings.Apply(current.Settings)
	}
	return next
}

// typed fills in a missing Type from the partition a category is filed under.
func typed(set ledger.CategorySet) ledger.CategorySet {
	for i := range set.Expense {
		set.Expense[i].Type = ledger.Expense
	}
	for i := range set.Income {
		set.Income[i].Type = ledger.Income
	}
	return set
}

func merge(current ledger.State, f File) (ledger.State, Result) {
	res := Result{Mode: Merge}
	next := ledger.State{
		Transactions: append([]ledger.Transaction{}, current.Transactions...),
		Categories:   current.Categories.Clone(),
		Settings:     current.Settings,
	}

	seen := make(map[string]bool, len(next.Transactions)+len(f.Transactions))
	for _, t := range next.Transactions {
		seen[t.ID] = true
	}
	for _, t := range f.Transactions {
		if seen[t.ID] {
			res.TransactionsSkipped++
			continue
		}
		seen[t.ID] = true
		next.Transactions = append(next.Transactions, t)
		res.TransactionsAdded++
	}

	if f.Categories == nil {
		return next, res
	}

	ids := make(map[string]bool)
	for _, list := range [][]ledger.Category{next.Categories.Expense, next.Categories.Income} {
		for _, c := range list {
			ids[c.ID] = true
		}
	}

	mergeInto := func(dst []ledger.Category, src []ledger.Category, typ ledger.Type) []ledger.Category {
		names := make(map[string]bool, len(dst))
		for _, c := range dst {
			names[foldName(c.Name)] = true
		}
		for _, c := range src {
			if names[foldName(c.Name)] {
				res.CategoriesSkipped++
				continue
			}
			c.Type = typ
			if ids[c.ID] {
				c.ID = freshID(c.ID, ids)
				c.IsDefault = false
			}
			ids[c.ID] = true
			names[foldName(c.Name)] = true
			dst = append(dst, c)
			res.CategoriesAdded++
		}
		return dst
	}
	next.Categories.Expense = mergeInto(next.Categories.Expense, f.Categories.Expense, ledger.Expense)
	next.Categories.Income = mergeInto(next.Categories.Income, f.Categories.Income, ledger.Income)

	return next, res
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func freshID(id string, taken map[string]bool) string {
	for n := 2; ; n++ {
		candidate := id + "_" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate
		}
	}
}

// Store is the part of ledger.Store an import needs.
type Store interface {
	State() ledger.State
	ReplaceAll(ctx context.Context, st ledger.State) error
}

// Import validates f, reconciles it with the store's state and persists the
// outcome in one step. A rejected file leaves the store unchanged.
func Import(ctx context.Context, store Store, f File, mode Mode) (Result, error) {
	if err := Validate(f); err != nil {
		return Result{}, err
	}

	next, res, err := Reconcile(store.State(), f, mode)
	if err != nil {
		return Result{}, err
	}
	if err := store.ReplaceAll(ctx, next); err != nil {
		return Result{}, fmt.Errorf("save imported data: %w", err)
	}

	log.Info("backup imported", "mode", mode,
		"transactionsAdded", res.TransactionsAdded, "transactionsSkipped", res.TransactionsSkipped,
		"categoriesAdded", res.CategoriesAdded, "categoriesSkipped", res.CategoriesSkipped)
	return res, nil
}
