package analytics

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestPeriodString(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{
			name:     "basic period",
			start:    time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "2023-12-01 - 2023-12-31",
		},
		{
			name:     "cross year period",
			start:    time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: "2023-12-15 - 2024-01-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Period{start: tt.start, end: tt.end}
			be.Equal(t, tt.expected, p.String())
		})
	}
}

func TestPeriodSetPeriod(t *testing.T) {
	tests := []struct {
		name        string
		current     time.Time
		kind        string
		expectStart time.Time
		expectEnd   time.Time
		expectTitle string
	}{
		{
			name:        "month - mid month",
			current:     time.Date(2023, 12, 15, 10, 30, 0, 0, time.UTC),
			kind:        PeriodMonth,
			expectStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expectTitle: "December 2023",
		},
		{
			name:        "month - leap february",
			current:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			kind:        PeriodMonth,
			expectStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
			expectTitle: "February 2024",
		},
		{
			name:        "year",
			current:     time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
			kind:        PeriodYear,
			expectStart: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expectTitle: "2023",
		},
		{
			name:        "unknown kind is a month",
			current:     time.Date(2023, 12, 15, 10, 30, 0, 0, time.UTC),
			kind:        "fortnight",
			expectStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			expectEnd:   time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC),
			expectTitle: "December 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Period
			p.SetPeriod(tt.current, tt.kind)

			be.Equal(t, tt.expectStart, p.start)
			be.Equal(t, tt.expectEnd, p.end)
			be.Equal(t, tt.expectTitle, p.Title())
		})
	}
}

func TestPeriodNavigation(t *testing.T) {
	p := NewPeriod(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), PeriodMonth)

	prev := p.Previous()
	be.Equal(t, "2023-12-01", prev.StartDate())
	be.Equal(t, "2023-12-31", prev.EndDate())

	next := p.Next()
	be.Equal(t, "2024-02-01", next.StartDate())
	be.Equal(t, "2024-02-29", next.EndDate())

	year := NewPeriod(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), PeriodYear).Next()
	be.Equal(t, "2025-01-01", year.StartDate())
	be.Equal(t, PeriodYear, year.Kind())

	c := p.Criteria()
	be.Equal(t, "2024-01-01", c.DateFrom)
	be.Equal(t, "2024-01-31", c.DateTo)
}

func TestPeriodSwitch(t *testing.T) {
	month := NewPeriod(time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC), PeriodMonth)

	year := month.Switch()
	be.Equal(t, PeriodYear, year.Kind())
	be.Equal(t, "2024-01-01", year.StartDate())
	be.Equal(t, "2024-12-31", year.EndDate())

	back := year.Switch()
	be.Equal(t, PeriodMonth, back.Kind())
	be.Equal(t, "January 2024", back.Title())
}
