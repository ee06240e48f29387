package analytics

import (
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/shopspring/decimal"
)

// RecentLimit is how many transactions the dashboard lists as recent.
const RecentLimit = 5

// Summary bundles the figures shown on the dashboard.
type Summary struct {
	Balance     decimal.Decimal
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Weekly      decimal.Decimal
	Monthly     decimal.Decimal
	TopCategory string
	Recent      []ledger.Transaction
}

// Summarize computes the dashboard figures in one pass over the helpers.
func Summarize(txs []ledger.Transaction, now time.Time) Summary {
	s := Summary{
		Income:  TotalByType(txs, ledger.Income),
		Expense: TotalByType(txs, ledger.Expense),
		Weekly:  WeeklySpending(txs, now),
		Monthly: MonthlySpending(txs, now),
		Recent:  Recent(txs, RecentLimit),
	}
	s.Balance = s.Income.Sub(s.Expense)
	s.TopCategory, _ = TopCategory(txs)
	return s
}

// Recent returns the first n transactions in collection order, which is
// most recently added first.
func Recent(txs []ledger.Transaction, n int) []ledger.Transaction {
	if n > len(txs) {
		n = len(txs)
	}
	return append([]ledger.Transaction{}, txs[:n]...)
}
