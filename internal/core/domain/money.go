package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every amount shown to a customer.
const CurrencySymbol = "$"

// denominations are the coin and note values the acceptor takes, ascending.
var denominations = []decimal.Decimal{
	decimal.RequireFromString("0.25"),
	decimal.RequireFromString("0.50"),
	decimal.RequireFromString("1.00"),
	decimal.RequireFromString("2.00"),
	decimal.RequireFromString("5.00"),
}

// Denominations returns a copy of the accepted values.
func Denominations() []decimal.Decimal {
	out := make([]decimal.Decimal, len(denominations))
	copy(out, denominations)
	return out
}

// IsAcceptedDenomination compares numerically, so 1, 1.0 and 1.00 all match.
func IsAcceptedDenomination(amount decimal.Decimal) bool {
	for _, d := range denominations {
		if amount.Equal(d) {
			return true
		}
	}
	return false
}

// FormatMoney renders an amount with two decimals, e.g. "$1.50".
func FormatMoney(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}

// DenominationList renders "$0.25, $0.50, $1.00, $2.00, or $5.00".
func DenominationList() string {
	parts := make([]string, len(denominations))
	for i, d := range denominations {
		parts[i] = FormatMoney(d)
	}
	last := len(parts) - 1
	return strings.Join(parts[:last], ", ") + ", or " + parts[last]
}
