package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gridquery/fixed/int128"
)

// Decimal returns the value as a shopspring decimal. The conversion
// is exact.
func (d Decimal) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(d.n.BigInt(), -FracDigits)
}

// FromDecimal converts a shopspring decimal. Digits beyond FracDigits
// round half away from zero; values outside the decimal range fail
// with ErrOutOfRange.
func FromDecimal(src decimal.Decimal) (Decimal, error) {
	scaled := src.Shift(FracDigits).Round(0)
	n, ok := int128.FromBigInt(scaled.BigInt())
	if !ok {
		return Decimal{}, fmt.Errorf("decimal %s: %w", src, ErrOutOfRange)
	}
	d, err := FromPacked(n)
	if err != nil {
		return Decimal{}, fmt.Errorf("decimal %s: %w", src, ErrOutOfRange)
	}
	return d, nil
}

// Parse converts a decimal string to a Decimal. The accepted grammar
// is shopspring's: an optional sign, digits with an optional decimal
// point, and an optional exponent.
func Parse(s string) (Decimal, error) {
	src, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return FromDecimal(src)
}
