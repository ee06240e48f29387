package trend

import (
	"strings"
	"testing"
	"time"

	"github.com/Rshep3087/pocketbook/analytics"
	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func TestNew(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"})

	columns := model.monthly.Columns()
	be.Equal(t, 5, len(columns))
	be.Equal(t, "Month", columns[0].Title)
	be.Equal(t, "Income", columns[1].Title)
	be.Equal(t, "Expense", columns[2].Title)
	be.Equal(t, "Net", columns[3].Title)

	be.Equal(t, 2, len(model.cashFlow.Columns()))
}

func TestToggleFocus(t *testing.T) {
	model := New(Colors{Primary: "#ff0000"})

	model.SetFocus(true)
	be.True(t, model.monthly.Focused())
	be.False(t, model.cashFlow.Focused())

	model.ToggleFocus()
	be.False(t, model.monthly.Focused())
	be.True(t, model.cashFlow.Focused())

	model.SetFocus(false)
	be.False(t, model.cashFlow.Focused())
}

func TestSetSeries(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txs := []ledger.Transaction{
		{ID: "1", Type: ledger.Income, Amount: decimal.NewFromInt(1000), Category: "Salary", Date: "2024-03-01"},
		{ID: "2", Type: ledger.Expense, Amount: decimal.NewFromInt(400), Category: "Rent", Date: "2024-03-02"},
		{ID: "3", Type: ledger.Expense, Amount: decimal.NewFromInt(200), Category: "Food", Date: "2024-02-02"},
	}

	model := New(Colors{Primary: "#ff0000"})
	model.SetSeries(
		analytics.BuildMonthlySeries(txs, 3, now),
		analytics.CashFlowSeries(txs, 30, now),
		"INR",
	)

	rows := model.monthly.Rows()
	be.Equal(t, 3, len(rows))
	be.Equal(t, "Jan 2024", rows[0][0])
	be.Equal(t, "Mar 2024", rows[2][0])
	be.Equal(t, "₹1,000.00", rows[2][1])
	be.Equal(t, "₹600.00", rows[2][3])
	be.Equal(t, barWidth, strings.Count(rows[2][4], "▇"))
	be.Equal(t, barWidth/2, strings.Count(rows[1][4], "▇"))
	be.Equal(t, "", rows[0][4])

	be.Equal(t, 7, len(model.cashFlow.Rows()))
}

func TestBarWithoutSpending(t *testing.T) {
	be.Equal(t, "", bar(decimal.Zero, decimal.Zero))
}
