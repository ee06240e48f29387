// Package budget classifies monthly spending against a spending limit.
package budget

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Level is the severity of a budget's progress.
type Level string

const (
	Normal  Level = "normal"
	Warning Level = "warning"
	Danger  Level = "danger"
)

var (
	hundred = decimal.NewFromInt(100)
	// WarningPercent is the share of the budget at which Warning starts.
	WarningPercent = decimal.NewFromInt(80)
)

// Status is the evaluation of one budget.
type Status struct {
	Budget decimal.Decimal
	Spent  decimal.Decimal
	// Percentage of the budget used, capped at 100.
	Percentage decimal.Decimal
	// Remaining is negative when over budget.
	Remaining decimal.Decimal
	Level     Level
}

// Over returns how much spending exceeds the budget, or zero.
func (s Status) Over() decimal.Decimal {
	if s.Remaining.IsNegative() {
		return s.Remaining.Neg()
	}
	return decimal.Zero
}

// Evaluate compares spent against budget. ok is false when budget is zero or
// negative, which means tracking is disabled.
func Evaluate(budget, spent decimal.Decimal) (s Status, ok bool) {
	if !budget.IsPositive() {
		return Status{}, false
	}

	pct := spent.Div(budget).Mul(hundred)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}

	s = Status{
		Budget:     budget,
		Spent:      spent,
		Percentage: pct.Round(2),
		Remaining:  budget.Sub(spent),
	}
	switch {
	case s.Remaining.IsNegative():
		s.Level = Danger
	case pct.GreaterThanOrEqual(WarningPercent):
		s.Level = Warning
	default:
		s.Level = Normal
	}
	return s, true
}

// CategoryStatus is the evaluation of one category's limit.
type CategoryStatus struct {
	Category string
	Status
}

// EvaluateCategories evaluates every category with a positive limit against
// what was spent in it, sorted by category name.
func EvaluateCategories(limits, spent map[string]decimal.Decimal) []CategoryStatus {
	out := make([]CategoryStatus, 0, len(limits))
	for name, limit := range limits {
		s, ok := Evaluate(limit, spent[name])
		if !ok {
			continue
		}
		out = append(out, CategoryStatus{Category: name, Status: s})
	}
	slices.SortFunc(out, func(a, b CategoryStatus) int {
		return strings.Compare(a.Category, b.Category)
	})
	return out
}
