package analytics

import (
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
	"github.com/shopspring/decimal"
)

// Default window sizes for the chart series.
const (
	DefaultMonths       = 6
	DefaultCashFlowDays = 30
	cashFlowSampleEvery = 5
)

// MonthlySeries holds per-month income and expense totals, oldest month
// first. All slices have the same length.
type MonthlySeries struct {
	Keys    []string // YYYY-MM
	Labels  []string // Jan, Feb, ...
	Income  []decimal.Decimal
	Expense []decimal.Decimal
}

// Len is the number of months in the series.
func (s MonthlySeries) Len() int { return len(s.Keys) }

// BuildMonthlySeries buckets transactions into the trailing n calendar
// months ending with the month of now. n < 1 uses DefaultMonths.
func BuildMonthlySeries(txs []ledger.Transaction, n int, now time.Time) MonthlySeries {
	if n < 1 {
		n = DefaultMonths
	}

	s := MonthlySeries{
		Keys:    make([]string, n),
		Labels:  make([]string, n),
		Income:  make([]decimal.Decimal, n),
		Expense: make([]decimal.Decimal, n),
	}
	index := make(map[string]int, n)
	first := startOfMonth(now)
	for i := range n {
		m := first.AddDate(0, i-(n-1), 0)
		s.Keys[i] = m.Format("2006-01")
		s.Labels[i] = m.Format("Jan")
		s.Income[i] = decimal.Zero
		s.Expense[i] = decimal.Zero
		index[s.Keys[i]] = i
	}

	for _, t := range txs {
		if len(t.Date) < 7 {
			continue
		}
		i, ok := index[t.Date[:7]]
		if !ok {
			continue
		}
		switch t.Type {
		case ledger.Income:
			s.Income[i] = s.Income[i].Add(t.Amount)
		case ledger.Expense:
			s.Expense[i] = s.Expense[i].Add(t.Amount)
		}
	}
	return s
}

// CashFlowPoint is the running balance at the end of one sampled day.
type CashFlowPoint struct {
	Date    string
	Label   string // "2 Jan"
	Balance decimal.Decimal
}

// CashFlowSeries walks days consecutive days starting days before today and
// keeps a running balance across the whole window. Only every fifth day and
// the final day are sampled, so the result is sparse.
func CashFlowSeries(txs []ledger.Transaction, days int, now time.Time) []CashFlowPoint {
	if days < 1 {
		days = DefaultCashFlowDays
	}

	daily := make(map[string]decimal.Decimal)
	for _, t := range txs {
		daily[t.Date] = daily[t.Date].Add(t.Signed())
	}

	start := startOfDay(now).AddDate(0, 0, -days)
	running := decimal.Zero
	points := make([]CashFlowPoint, 0, days/cashFlowSampleEvery+2)
	for i := range days {
		day := start.AddDate(0, 0, i)
		key := day.Format(ledger.DateLayout)
		running = running.Add(daily[key])

		if i%cashFlowSampleEvery == 0 || i == days-1 {
			points = append(points, CashFlowPoint{
				Date:    key,
				Label:   day.Format("2 Jan"),
				Balance: running,
			})
		}
	}
	return points
}
