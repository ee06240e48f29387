package backup

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
)

// Validate checks that f can be imported. All problems are reported at once.
func Validate(f File) error {
	if f.Transactions == nil && f.Categories == nil {
		return fmt.Errorf("%w: file has neither transactions nor categories", ErrInvalidBackup)
	}

	var errs []error
	for i, t := range f.Transactions {
		if err := validateTransaction(t); err != nil {
			errs = append(errs, fmt.Errorf("transaction %d: %w", i, err))
		}
	}

	if f.Categories != nil {
		for _, typ := range []ledger.Type{ledger.Expense, ledger.Income} {
			for i, c := range f.Categories.Of(typ) {
				if err := validateCategory(c, typ); err != nil {
					errs = append(errs, fmt.Errorf("%s category %d: %w", typ, i, err))
				}
			}
		}
	}

	if f.Settings != nil {
		if err := validateSettings(*f.Settings); err != nil {
			errs = append(errs, fmt.Errorf("settings: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBackup, errors.Join(errs...))
	}
	return nil
}

func validateTransaction(t ledger.Transaction) error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return errors.New("missing id")
	case !t.Type.Valid():
		return fmt.Errorf("unknown type %q", t.Type)
	case !t.Amount.IsPositive():
		return errors.New("amount must be positive")
	case strings.TrimSpace(t.Category) == "":
		return errors.New("missing category")
	}
	if _, err := time.Parse(ledger.DateLayout, t.Date); err != nil {
		return fmt.Errorf("date %q is not YYYY-MM-DD", t.Date)
	}
	return nil
}

func validateCategory(c ledger.Category, partition ledger.Type) error {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return errors.New("missing id")
	case strings.TrimSpace(c.Name) == "":
		return errors.New("missing name")
	case c.Type != "" && c.Type != partition:
		return fmt.Errorf("type %q filed under %q", c.Type, partition)
	}
	return nil
}

func validateSettings(p SettingsPatch) error {
	if p.Currency != nil {
		if _, err := ledger.LookupCurrency(*p.Currency); err != nil {
			return err
		}
	}
	if p.Theme != nil {
		if _, err := ledger.ParseTheme(*p.Theme); err != nil {
			return err
		}
	}
	if p.MonthlyBudget != nil && p.MonthlyBudget.IsNegative() {
		return errors.New("monthly budget cannot be negative")
	}
	for name, v := range p.CategoryBudgets {
		if v.IsNegative() {
			return fmt.Errorf("budget for %q cannot be negative", name)
		}
	}
	return nil
}
