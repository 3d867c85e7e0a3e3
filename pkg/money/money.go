// Package money converts between the decimal string amounts spoken by the
// external providers and the int64 minor units (cents) kept in storage.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var centFactor = decimal.NewFromInt(100)

// ParseCents parses a decimal amount string ("50.25") into cents (5025).
// The provider's sign is preserved.
func ParseCents(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount %q: %w", amount, err)
	}
	return ToCents(d), nil
}

// ToCents converts a decimal amount into cents, rounding to the nearest cent.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(centFactor).Round(0).IntPart()
}

// FromCents converts cents back into a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centFactor)
}

// Format renders cents as a plain decimal string with two places ("50.25").
func Format(cents int64) string {
	return FromCents(cents).StringFixed(2)
}
