package ledger

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is a display currency. Stored amounts are in the base unit (INR);
// Rate converts them for display only.
type Currency struct {
	Code   string
	Symbol string
	Rate   decimal.Decimal
}

var currencies = []Currency{
	{Code: "INR", Symbol: "₹", Rate: decimal.NewFromInt(1)},
	{Code: "USD", Symbol: "$", Rate: decimal.RequireFromString("0.012")},
}

// Currencies lists the supported display currencies.
func Currencies() []Currency {
	return append([]Currency{}, currencies...)
}

func LookupCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// Convert returns amount expressed in the currency.
func (c Currency) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.Rate)
}

// Format converts amount and renders it with the currency's symbol and
// grouping, e.g. ₹1,234.50.
func (c Currency) Format(amount decimal.Decimal) string {
	cents := c.Convert(amount).Shift(2).Round(0).IntPart()
	return money.New(cents, c.Code).Display()
}

// FormatAmount formats amount in the currency identified by code, falling
// back to the base currency for unknown codes.
func FormatAmount(amount decimal.Decimal, code string) string {
	c, err := LookupCurrency(code)
	if err != nil {
		c = currencies[0]
	}
	return c.Format(amount)
}
