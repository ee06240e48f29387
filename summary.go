package main

import (
	"time"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/budget"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/shopspring/decimal"
)

// SummaryData represents the dashboard figures shared by the summary command
// and the overview screen.
type SummaryData struct {
	Summary   analytics.Summary
	Currency  string
	Budget    *budget.Status
	Limits    []budget.CategoryStatus
	Breakdown []analytics.CategoryTotal
}

// calculateSummaryData derives everything the summary needs from one
// snapshot of the ledger.
func calculateSummaryData(st ledger.State, now time.Time, includeBreakdown bool) *SummaryData {
	data := &SummaryData{
		Summary:  analytics.Summarize(st.Transactions, now),
		Currency: st.Settings.Currency,
	}

	if s, ok := budget.Evaluate(st.Settings.MonthlyBudget, data.Summary.Monthly); ok {
		data.Budget = &s
	}
	data.Limits = budget.EvaluateCategories(
		st.Settings.CategoryBudgets,
		analytics.MonthlyCategorySpending(st.Transactions, now),
	)

	if includeBreakdown {
		data.Breakdown = analytics.CategoryBreakdown(st.Transactions, ledger.Expense)
	}
	return data
}

// SummaryJSON is the JSON-friendly form of SummaryData for CLI output.
type SummaryJSON struct {
	Currency       string               `json:"currency"`
	Balance        string               `json:"balance"`
	Income         string               `json:"income"`
	Expense        string               `json:"expense"`
	WeeklySpending string               `json:"weekly_spending"`
	MonthlySpend   string               `json:"monthly_spending"`
	TopCategory    string               `json:"top_category,omitempty"`
	Budget         *BudgetJSON          `json:"budget,omitempty"`
	CategoryBudget []CategoryBudgetJSON `json:"category_budgets,omitempty"`
	Breakdown      []CategoryTotalJSON  `json:"breakdown,omitempty"`
	Recent         []ledger.Transaction `json:"recent"`
}

// BudgetJSON is the JSON-friendly version of budget.Status.
type BudgetJSON struct {
	Budget     string `json:"budget"`
	Spent      string `json:"spent"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
	Level      string `json:"level"`
	Message    string `json:"message"`
}

// CategoryBudgetJSON is one category limit in JSON output.
type CategoryBudgetJSON struct {
	Category string `json:"category"`
	BudgetJSON
}

// CategoryTotalJSON is one breakdown row in JSON output.
type CategoryTotalJSON struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Percent  string `json:"percent"`
}

func budgetJSON(s budget.Status, currency string) BudgetJSON {
	format := func(v decimal.Decimal) string { return ledger.FormatAmount(v, currency) }
	return BudgetJSON{
		Budget:     format(s.Budget),
		Spent:      format(s.Spent),
		Remaining:  format(s.Remaining),
		Percentage: s.Percentage.StringFixed(2),
		Level:      string(s.Level),
		Message:    s.Message(format),
	}
}

// ToJSON converts SummaryData to JSON-friendly format.
func (d *SummaryData) ToJSON() *SummaryJSON {
	format := func(v decimal.Decimal) string { return ledger.FormatAmount(v, d.Currency) }
	out := &SummaryJSON{
		Currency:       d.Currency,
		Balance:        format(d.Summary.Balance),
		Income:         format(d.Summary.Income),
		Expense:        format(d.Summary.Expense),
		WeeklySpending: format(d.Summary.Weekly),
		MonthlySpend:   format(d.Summary.Monthly),
		TopCategory:    d.Summary.TopCategory,
		Recent:         d.Summary.Recent,
	}

	if d.Budget != nil {
		b := budgetJSON(*d.Budget, d.Currency)
		out.Budget = &b
	}
	for _, l := range d.Limits {
		out.CategoryBudget = append(out.CategoryBudget, CategoryBudgetJSON{
			Category:   l.Category,
			BudgetJSON: budgetJSON(l.Status, d.Currency),
		})
	}
	for _, c := range d.Breakdown {
		out.Breakdown = append(out.Breakdown, CategoryTotalJSON{
			Category: c.Category,
			Amount:   format(c.Amount),
			Percent:  c.Percent.StringFixed(2),
		})
	}
	return out
}
