package overview

import (
	"strings"
	"testing"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/budget"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGauge(t *testing.T) {
	tests := []struct {
		pct    string
		filled int
	}{
		{pct: "0", filled: 0},
		{pct: "50", filled: 15},
		{pct: "100", filled: 30},
		{pct: "150", filled: 30},
	}

	for _, tt := range tests {
		t.Run(tt.pct, func(t *testing.T) {
			g := gauge(dec(tt.pct))
			be.Equal(t, tt.filled, strings.Count(g, "█"))
			be.Equal(t, gaugeWidth-tt.filled, strings.Count(g, "░"))
		})
	}
}

func TestBudgetTree(t *testing.T) {
	m := New()

	be.In(t, "No monthly budget set", m.budgetTree().String())

	s, ok := budget.Evaluate(dec("1000"), dec("1100"))
	be.True(t, ok)
	limits := budget.EvaluateCategories(
		map[string]decimal.Decimal{"Food": dec("200")},
		map[string]decimal.Decimal{"Food": dec("50")},
	)
	m.SetBudgets(&s, limits)

	out := m.budgetTree().String()
	be.In(t, "Over budget by ₹100.00", out)
	be.In(t, "Food ₹50.00 / ₹200.00", out)
}

func TestSummaryViewUsesCurrency(t *testing.T) {
	m := New(WithCurrency("USD"))
	m.SetSummary(analytics.Summary{
		Income:      dec("1000"),
		Expense:     dec("250"),
		Balance:     dec("750"),
		TopCategory: "Food",
	})

	out := m.summaryView()
	be.In(t, "$12.00", out)
	be.In(t, "$3.00", out)
	be.In(t, "$9.00", out)
	be.In(t, "Top category: Food", out)
}

func TestRecentView(t *testing.T) {
	m := New()
	be.In(t, "No transactions yet", m.recentView())

	m.SetSummary(analytics.Summary{Recent: []ledger.Transaction{
		{ID: "1", Type: ledger.Expense, Amount: dec("40"), Category: "food", Date: "2024-03-02"},
		{ID: "2", Type: ledger.Income, Amount: dec("500"), Category: "Salary", Date: "2024-03-01"},
	}})

	out := m.recentView()
	be.In(t, "2024-03-02", out)
	be.In(t, "Food", out)
	be.In(t, "-₹40.00", out)
	be.In(t, "+₹500.00", out)
}

func TestBreakdownRows(t *testing.T) {
	m := New()
	m.SetBreakdown([]analytics.CategoryTotal{
		{Category: "Rent", Amount: dec("750"), Percent: dec("75")},
		{Category: "Food", Amount: dec("250"), Percent: dec("25")},
	})

	rows := m.breakdownRows()
	be.Equal(t, 2, len(rows))
	be.Equal(t, "Rent", rows[0][0])
	be.Equal(t, "₹750.00", rows[0][1])
	be.Equal(t, "75.00%", rows[0][2])
}
