package analytics

import (
	"fmt"
	"time"

	"github.com/Rshep3087/pocketbook/ledger"
)

// Period types for browsing transactions.
const (
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Period is a calendar month or year.
type Period struct {
	kind  string
	start time.Time
	end   time.Time
}

// NewPeriod returns the period of the given kind containing current.
func NewPeriod(current time.Time, kind string) Period {
	var p Period
	p.SetPeriod(current, kind)
	return p
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.StartDate(), p.EndDate())
}

// Title is a short human label, "March 2024" or "2024".
func (p Period) Title() string {
	if p.kind == PeriodYear {
		return p.start.Format("2006")
	}
	return p.start.Format("January 2006")
}

func (p Period) Kind() string { return p.kind }

func (p Period) StartDate() string {
	return p.start.Format(ledger.DateLayout)
}

func (p Period) EndDate() string {
	return p.end.Format(ledger.DateLayout)
}

// SetPeriod moves p to the period of kind containing current. Unknown kinds
// are treated as months.
func (p *Period) SetPeriod(current time.Time, kind string) {
	loc := current.Location()
	switch kind {
	case PeriodYear:
		p.kind = PeriodYear
		p.start = time.Date(current.Year(), 1, 1, 0, 0, 0, 0, loc)
		p.end = time.Date(current.Year()+1, 1, 1, 0, 0, 0, 0, loc).Add(-time.Second)
	default:
		p.kind = PeriodMonth
		p.start = time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, loc)
		p.end = time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, loc).Add(-time.Second)
	}
}

// Next returns the following period of the same kind.
func (p Period) Next() Period {
	return NewPeriod(p.end.Add(time.Second), p.kind)
}

// Previous returns the preceding period of the same kind.
func (p Period) Previous() Period {
	return NewPeriod(p.start.Add(-time.Second), p.kind)
}

// Criteria returns filter criteria covering the period.
func (p Period) Criteria() Criteria {
	return Criteria{DateFrom: p.StartDate(), DateTo: p.EndDate()}
}

// Switch returns the period of the other kind that contains the start of p.
func (p Period) Switch() Period {
	if p.kind == PeriodYear {
		return NewPeriod(p.start, PeriodMonth)
	}
	return NewPeriod(p.start, PeriodYear)
}
