package analytics

import (
	"testing"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func tx(id string, typ ledger.Type, amount string, category, date string) ledger.Transaction {
	return ledger.Transaction{
		ID:       id,
		Type:     typ,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ids(txs []ledger.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestSalaryAndFood(t *testing.T) {
	txs := []ledger.Transaction{
		tx("2", ledger.Expense, "100", "Food", "2024-03-02"),
		tx("1", ledger.Income, "500", "Salary", "2024-03-01"),
	}

	be.True(t, Balance(txs).Equal(dec("400")))
	be.True(t, TotalByType(txs, ledger.Expense).Equal(dec("100")))
	be.True(t, TotalByType(txs, ledger.Income).Equal(dec("500")))

	top, ok := TopCategory(txs)
	be.True(t, ok)
	be.Equal(t, "Food", top)
}

func TestBalanceMatchesTotals(t *testing.T) {
	txs := []ledger.Transaction{
		tx("1", ledger.Income, "1000.25", "Salary", "2024-01-01"),
		tx("2", ledger.Expense, "99.99", "Food", "2024-01-02"),
		tx("3", ledger.Expense, "0.01", "Bills", "2024-01-03"),
		tx("4", ledger.Income, "12", "Other", "2024-01-04"),
	}

	for i := range len(txs) + 1 {
		sub := txs[:i]
		want := TotalByType(sub, ledger.Income).Sub(TotalByType(sub, ledger.Expense))
		be.True(t, Balance(sub).Equal(want))
	}
	be.True(t, Balance(txs).Equal(dec("912.25")))
}

func TestCriteriaIsZero(t *testing.T) {
	be.True(t, Criteria{}.IsZero())
	be.False(t, Criteria{Search: "food"}.IsZero())
	be.False(t, Criteria{DateFrom: "2024-01-01"}.IsZero())
	be.False(t, Criteria{Type: ledger.Income}.IsZero())
}

func TestFilter(t *testing.T) {
	txs := []ledger.Transaction{
		tx("a", ledger.Expense, "10", "Food", "2024-01-15"),
		tx("b", ledger.Expense, "20", "Rent", "2024-02-01"),
		tx("c", ledger.Income, "30", "Salary", "2024-01-31"),
		tx("d", ledger.Expense, "45.5", "Transport", "2024-01-15"),
		tx("e", ledger.Expense, "5", "Food", "2023-12-31"),
	}
	txs[3].Note = "Taxi to airport"

	tests := []struct {
		name string
		c    Criteria
		want []string
	}{
		{
			name: "no criteria sorts by date",
			c:    Criteria{},
			want: []string{"b", "c", "a", "d", "e"},
		},
		{
			name: "january only",
			c:    Criteria{DateFrom: "2024-01-01", DateTo: "2024-01-31"},
			want: []string{"c", "a", "d"},
		},
		{
			name: "type",
			c:    Criteria{Type: ledger.Income},
			want: []string{"c"},
		},
		{
			name: "search category case insensitive",
			c:    Criteria{Search: "fOOd"},
			want: []string{"a", "e"},
		},
		{
			name: "search note",
			c:    Criteria{Search: "airport"},
			want: []string{"d"},
		},
		{
			name: "search amount",
			c:    Criteria{Search: "45.5"},
			want: []string{"d"},
		},
		{
			name: "combined",
			c:    Criteria{Search: "food", DateFrom: "2024-01-01", Type: ledger.Expense},
			want: []string{"a"},
		},
		{
			name: "no match",
			c:    Criteria{Search: "zzz"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(txs, tt.c)
			be.AllEqual(t, tt.want, ids(got))
		})
	}
}

func TestTotalsByCategory(t *testing.T) {
	txs := []ledger.Transaction{
		tx("1", ledger.Expense, "10", "Food", "2024-01-01"),
		tx("2", ledger.Expense, "15", "Food", "2024-01-02"),
		tx("3", ledger.Expense, "30", "Old Category", "2024-01-03"),
		tx("4", ledger.Income, "100", "Salary", "2024-01-04"),
	}

	totals := TotalsByCategory(txs, ledger.Expense)
	be.Equal(t, 2, len(totals))
	be.True(t, totals["Food"].Equal(dec("25")))
	be.True(t, totals["Old Category"].Equal(dec("30")))

	breakdown := CategoryBreakdown(txs, ledger.Expense)
	be.Equal(t, 2, len(breakdown))
	be.Equal(t, "Old Category", breakdown[0].Category)
	be.True(t, breakdown[0].Percent.Equal(dec("54.55")))
	be.True(t, breakdown[1].Percent.Equal(dec("45.45")))
}

func TestTopCategory(t *testing.T) {
	t.Run("tie goes to smaller name", func(t *testing.T) {
		txs := []ledger.Transaction{
			tx("1", ledger.Expense, "50", "Rent", "2024-01-01"),
			tx("2", ledger.Expense, "50", "Bills", "2024-01-01"),
		}
		top, ok := TopCategory(txs)
		be.True(t, ok)
		be.Equal(t, "Bills", top)
	})

	t.Run("no expenses", func(t *testing.T) {
		_, ok := TopCategory([]ledger.Transaction{tx("1", ledger.Income, "5", "Salary", "2024-01-01")})
		be.False(t, ok)
	})
}

func TestWeeklySpending(t *testing.T) {
	txs := []ledger.Transaction{
		tx("1", ledger.Expense, "10", "Food", "2024-03-10"), // previous Sunday
		tx("2", ledger.Expense, "20", "Food", "2024-03-11"), // Monday
		tx("3", ledger.Expense, "40", "Food", "2024-03-17"), // Sunday
		tx("4", ledger.Income, "80", "Salary", "2024-03-12"),
		tx("5", ledger.Expense, "5", "Food", "2024-04-01"), // future
	}

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "on sunday the week began six days ago", now: time.Date(2024, 3, 17, 20, 0, 0, 0, time.UTC), want: "65"},
		{name: "on monday", now: time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), want: "65"},
		{name: "midweek", now: time.Date(2024, 3, 13, 8, 0, 0, 0, time.UTC), want: "65"},
		{name: "previous week", now: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), want: "75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.True(t, WeeklySpending(txs, tt.now).Equal(dec(tt.want)))
		})
	}
}

func TestMonthlySpending(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	txs := []ledger.Transaction{
		tx("1", ledger.Expense, "10", "Food", "2024-02-29"),
		tx("2", ledger.Expense, "20", "Food", "2024-03-01"),
		tx("3", ledger.Expense, "30", "Rent", "2024-03-15"),
		tx("4", ledger.Income, "99", "Salary", "2024-03-05"),
	}

	be.True(t, MonthlySpending(txs, now).Equal(dec("50")))

	byCategory := MonthlyCategorySpending(txs, now)
	be.True(t, byCategory["Food"].Equal(dec("20")))
	be.True(t, byCategory["Rent"].Equal(dec("30")))
	be.Equal(t, 2, len(byCategory))
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	var txs []ledger.Transaction
	for i, d := range []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05", "2024-03-06"} {
		txs = append(txs, tx(string(rune('a'+i)), ledger.Expense, "10", "Food", d))
	}
	txs = append(txs, tx("z", ledger.Income, "100", "Salary", "2024-03-01"))

	s := Summarize(txs, now)
	be.True(t, s.Balance.Equal(dec("40")))
	be.True(t, s.Expense.Equal(dec("60")))
	be.True(t, s.Monthly.Equal(dec("60")))
	be.Equal(t, "Food", s.TopCategory)
	be.AllEqual(t, []string{"a", "b", "c", "d", "e"}, ids(s.Recent))
}
