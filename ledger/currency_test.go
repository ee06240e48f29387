package ledger

import (
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{amount: "1234.5", code: "INR", want: "₹1,234.50"},
		{amount: "1000", code: "USD", want: "$12.00"},
		{amount: "0", code: "INR", want: "₹0.00"},
		{amount: "10", code: "XYZ", want: "₹10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.code+" "+tt.amount, func(t *testing.T) {
			be.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.amount), tt.code))
		})
	}
}

func TestLookupCurrency(t *testing.T) {
	c, err := LookupCurrency(" usd ")
	be.NilErr(t, err)
	be.Equal(t, "$", c.Symbol)

	_, err = LookupCurrency("GBP")
	be.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("Income")
	be.NilErr(t, err)
	be.Equal(t, Income, typ)

	_, err = ParseType("transfer")
	be.True(t, errors.Is(err, ErrInvalidInput))
}
