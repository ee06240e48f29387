// Package analytics derives totals, groupings and time series from a slice
// of transactions. Every function is a pure read; callers pass the current
// collection and, where "today" matters, the current time.
package analytics

import (
	"slices"
	"strings"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/shopspring/decimal"
)

// Criteria narrows a transaction list. Zero fields match everything.
type Criteria struct {
	// Search matches, case-insensitively, the category, the note or the
	// amount as written.
	Search string
	// DateFrom and DateTo are inclusive YYYY-MM-DD bounds.
	DateFrom string
	DateTo   string
	Type     ledger.Type
}

// IsZero reports whether c selects every transaction.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

func (c Criteria) match(t ledger.Transaction) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Category), q) &&
			!strings.Contains(strings.ToLower(t.Note), q) &&
			!strings.Contains(t.Amount.String(), q) {
			return false
		}
	}
	if c.DateFrom != "" && t.Date < c.DateFrom {
		return false
	}
	if c.DateTo != "" && t.Date > c.DateTo {
		return false
	}
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	return true
}

// Filter returns the transactions matching c, newest date first. Equal dates
// keep their order in txs.
func Filter(txs []ledger.Transaction, c Criteria) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(txs))
	for _, t := range txs {
		if c.match(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b ledger.Transaction) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// TotalByType sums the amounts of every transaction of type typ.
func TotalByType(txs []ledger.Transaction, typ ledger.Type) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == typ {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense.
func Balance(txs []ledger.Transaction) decimal.Decimal {
	return TotalByType(txs, ledger.Income).Sub(TotalByType(txs, ledger.Expense))
}

// TotalsByCategory groups transactions of type typ by category name. Names
// of deleted categories still appear.
func TotalsByCategory(txs []ledger.Transaction, typ ledger.Type) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != typ {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	// Percent is the share of the type total, 0-100.
	Percent decimal.Decimal
}

// CategoryBreakdown returns TotalsByCategory sorted by amount, largest first,
// with each category's share of the total.
func CategoryBreakdown(txs []ledger.Transaction, typ ledger.Type) []CategoryTotal {
	totals := TotalsByCategory(txs, typ)

	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for name, amount := range totals {
		pct := decimal.Zero
		if sum.IsPositive() {
			pct = amount.Div(sum).Mul(decimal.NewFromInt(100)).Round(2)
		}
		out = append(out, CategoryTotal{Category: name, Amount: amount, Percent: pct})
	}
	slices.SortFunc(out, compareTotals)
	return out
}

func compareTotals(a, b CategoryTotal) int {
	if c := b.Amount.Cmp(a.Amount); c != 0 {
		return c
	}
	return strings.Compare(a.Category, b.Category)
}

// TopCategory returns the expense category with the largest total. Ties go
// to the lexicographically smaller name. ok is false when there are no
// expenses.
func TopCategory(txs []ledger.Transaction) (name string, ok bool) {
	breakdown := CategoryBreakdown(txs, ledger.Expense)
	if len(breakdown) == 0 {
		return "", false
	}
	return breakdown[0].Category, true
}

// startOfWeek returns the Monday of the week containing now.
func startOfWeek(now time.Time) time.Time {
	offset := int(now.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6
	}
	return startOfDay(now).AddDate(0, 0, -offset)
}

func startOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func expensesSince(txs []ledger.Transaction, since string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == ledger.Expense && t.Date >= since {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// WeeklySpending sums expenses dated on or after this week's Monday. Future
// dated expenses count too.
func WeeklySpending(txs []ledger.Transaction, now time.Time) decimal.Decimal {
	return expensesSince(txs, startOfWeek(now).Format(ledger.DateLayout))
}

// MonthlySpending sums expenses dated on or after the first of this month.
func MonthlySpending(txs []ledger.Transaction, now time.Time) decimal.Decimal {
	return expensesSince(txs, startOfMonth(now).Format(ledger.DateLayout))
}

// MonthlyCategorySpending groups this month's expenses by category.
func MonthlyCategorySpending(txs []ledger.Transaction, now time.Time) map[string]decimal.Decimal {
	since := startOfMonth(now).Format(ledger.DateLayout)
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type == ledger.Expense && t.Date >= since {
			totals[t.Category] = totals[t.Category].Add(t.Amount)
		}
	}
	return totals
}
