// Package ledger holds the tracker's records and the operations that mutate
// them. Every successful mutation is flushed to a storage.Backend before it
// becomes visible.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, both in storage and in backup files.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	// ErrInvalidInput wraps every validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrProtected is returned when deleting a built-in category.
	ErrProtected = errors.New("category is protected")
	// ErrUnknownCurrency is returned for currency codes without a display config.
	ErrUnknownCurrency = errors.New("unknown currency")
)

// DateLayout is the calendar date format used for Transaction.Date.
const DateLayout = "2006-01-02"

type Type string

const (
	Expense Type = "expense"
	Income  Type = "income"
)

func (t Type) Valid() bool {
	return t == Expense || t == Income
}

func (t Type) String() string { return string(t) }

// ParseType accepts "expense" or "income" in any case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: type must be %q or %q, got %q", ErrInvalidInput, Expense, Income, s)
	}
	return t, nil
}

// Transaction is a single income or expense record. Category is the display
// name at the time of entry, so renaming or deleting a category never touches
// past transactions.
type Transaction struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      Type            `json:"type"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Signed returns the amount with expenses negated.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionInput carries the user editable fields of a transaction.
type TransactionInput struct {
	Type     Type
	Amount   decimal.Decimal
	Category string
	Date     string
	Note     string
}

func (in TransactionInput) validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, in.Type)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, in.Date)
	}
	return nil
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      Type   `json:"type,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// CategorySet partitions categories by transaction type.
type CategorySet struct {
	Expense []Category `json:"expense"`
	Income  []Category `json:"income"`
}

// Of returns the partition for t.
func (c CategorySet) Of(t Type) []Category {
	if t == Income {
		return c.Income
	}
	return c.Expense
}

// Find looks a category up by id across both partitions.
func (c CategorySet) Find(id string) (Category, bool) {
	for _, list := range [][]Category{c.Expense, c.Income} {
		for _, cat := range list {
			if cat.ID == id {
				return cat, true
			}
		}
	}
	return Category{}, false
}

// Clone returns a deep copy.
func (c CategorySet) Clone() CategorySet {
	return CategorySet{
		Expense: append([]Category{}, c.Expense...),
		Income:  append([]Category{}, c.Income...),
	}
}

// Themes understood by the dashboard.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ParseTheme normalizes s to ThemeDark or ThemeLight.
func ParseTheme(s string) (string, error) {
	theme := strings.ToLower(strings.TrimSpace(s))
	if theme != ThemeDark && theme != ThemeLight {
		return "", fmt.Errorf("%w: theme must be %q or %q", ErrInvalidInput, ThemeDark, ThemeLight)
	}
	return theme, nil
}

type Settings struct {
	Currency        string                     `json:"currency"`
	Theme           string                     `json:"theme,omitempty"`
	MonthlyBudget   decimal.Decimal            `json:"monthlyBudget"`
	CategoryBudgets map[string]decimal.Decimal `json:"categoryBudgets,omitempty"`
}

func (s Settings) clone() Settings {
	out := s
	if s.CategoryBudgets != nil {
		out.CategoryBudgets = make(map[string]decimal.Decimal, len(s.CategoryBudgets))
		for k, v := range s.CategoryBudgets {
			out.CategoryBudgets[k] = v
		}
	}
	return out
}

// State is a full copy of the three persisted records.
type State struct {
	Transactions []Transaction
	Categories   CategorySet
	Settings     Settings
}
