package analytics

import (
	"testing"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func TestBuildMonthlySeries(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []ledger.Transaction{
		tx("1", ledger.Income, "1000", "Salary", "2024-03-01"),
		tx("2", ledger.Expense, "200", "Food", "2024-03-10"),
		tx("3", ledger.Expense, "50", "Food", "2024-01-31"),
		tx("4", ledger.Income, "300", "Freelance", "2023-10-01"),
		tx("5", ledger.Expense, "75", "Rent", "2023-09-30"), // outside the window
		tx("6", ledger.Expense, "25", "Rent", "2024-04-01"), // future month
	}

	s := BuildMonthlySeries(txs, 6, now)
	be.Equal(t, 6, s.Len())
	be.AllEqual(t, []string{"2023-10", "2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}, s.Keys)
	be.AllEqual(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, s.Labels)

	// each bucket matches a direct recomputation
	for i, key := range s.Keys {
		wantIncome, wantExpense := decimal.Zero, decimal.Zero
		for _, x := range txs {
			if x.Date[:7] != key {
				continue
			}
			if x.Type == ledger.Income {
				wantIncome = wantIncome.Add(x.Amount)
			} else {
				wantExpense = wantExpense.Add(x.Amount)
			}
		}
		be.True(t, s.Income[i].Equal(wantIncome))
		be.True(t, s.Expense[i].Equal(wantExpense))
	}
	be.True(t, s.Expense[5].Equal(dec("200")))
	be.True(t, s.Income[0].Equal(dec("300")))
}

func TestBuildMonthlySeriesDefaults(t *testing.T) {
	s := BuildMonthlySeries(nil, 0, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	be.Equal(t, DefaultMonths, s.Len())
	be.Equal(t, "2023-08", s.Keys[0])
	be.Equal(t, "2024-01", s.Keys[5])
}

func TestCashFlowSeries(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	txs := []ledger.Transaction{
		tx("1", ledger.Income, "1000", "Salary", "2024-02-14"), // first day of the window
		tx("2", ledger.Expense, "200", "Food", "2024-02-20"),
		tx("3", ledger.Expense, "50", "Food", "2024-03-14"), // last day of the window
		tx("4", ledger.Income, "999", "Other", "2024-03-15"), // today, outside
		tx("5", ledger.Income, "999", "Other", "2024-02-13"), // before the window
	}

	points := CashFlowSeries(txs, 30, now)

	want := []struct {
		date    string
		label   string
		balance string
	}{
		{"2024-02-14", "14 Feb", "1000"},
		{"2024-02-19", "19 Feb", "1000"},
		{"2024-02-24", "24 Feb", "800"},
		{"2024-02-29", "29 Feb", "800"},
		{"2024-03-05", "5 Mar", "800"},
		{"2024-03-10", "10 Mar", "800"},
		{"2024-03-14", "14 Mar", "750"},
	}

	be.Equal(t, len(want), len(points))
	for i, w := range want {
		be.Equal(t, w.date, points[i].Date)
		be.Equal(t, w.label, points[i].Label)
		be.True(t, points[i].Balance.Equal(dec(w.balance)))
	}
}

func TestCashFlowSeriesFinalSample(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	// 5 days: indices 0 and 4 are sampled
	points := CashFlowSeries(nil, 5, now)
	be.Equal(t, 2, len(points))
	be.Equal(t, "2024-03-10", points[0].Date)
	be.Equal(t, "2024-03-14", points[1].Date)

	// 6 days: 0, 5 and the final index coincide at 5
	points = CashFlowSeries(nil, 6, now)
	be.Equal(t, 2, len(points))
}
