package budget

import "github.com/shopspring/decimal"

// Message is the one-line description shown under the progress bar. format
// renders amounts in the display currency.
func (s Status) Message(format func(decimal.Decimal) string) string {
	switch s.Level {
	case Danger:
		return "Over budget by " + format(s.Over())
	case Warning:
		return "Almost at limit, " + format(s.Remaining) + " left"
	default:
		return format(s.Remaining) + " remaining"
	}
}
