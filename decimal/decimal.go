package decimal

import (
	"fmt"
	"hash/fnv"

	"github.com/zeebo/errs"

	"github.com/gridquery/fixed/int128"
)

var Error = errs.Class("decimal")

// Every fallible operation fails with one of these. Wrapped errors
// add operand context; match with errors.Is.
var (
	ErrOutOfRange = Error.New("value out of decimal range")
	ErrNonFinite  = Error.New("not a finite number")
)

const (
	// Precision is the total number of significant decimal digits.
	Precision = 38

	// FracDigits is the number of digits after the decimal point.
	FracDigits = 8

	// IntDigits is the digit budget left of the decimal point.
	IntDigits = Precision - FracDigits

	// Scale is 10^FracDigits, the factor between the logical value
	// and the stored scaled integer.
	Scale = 100_000_000
)

// Decimal range bounds as word literals: +/-(10^Precision - 1) in
// scaled units. Kept as compile-time constants rather than derived at
// runtime; decimal_test.go cross-checks them against math/big.
var (
	maxScaled = int128.New(0x4B3B_4CA8_5A86_C47A, 0x098A_223F_FFFF_FFFF)
	minScaled = int128.New(0xB4C4_B357_A579_3B85, 0xF675_DDC0_0000_0001)
)

// Decimal is a fixed-point decimal number. The zero value is 0.
type Decimal struct {
	n int128.Int128
}

// MaxValue returns the largest representable decimal,
// (10^Precision - 1) / Scale.
func MaxValue() Decimal {
	return Decimal{n: maxScaled}
}

// MinValue returns the smallest representable decimal,
// -(10^Precision - 1) / Scale.
func MinValue() Decimal {
	return Decimal{n: minScaled}
}

func inRange(n int128.Int128) bool {
	return n.Cmp(minScaled) >= 0 && n.Cmp(maxScaled) <= 0
}

// FromPacked returns the decimal with the given scaled integer. It
// fails with ErrOutOfRange if n exceeds Precision digits.
func FromPacked(n int128.Int128) (Decimal, error) {
	if !inRange(n) {
		return Decimal{}, fmt.Errorf("scaled integer %s: %w", n, ErrOutOfRange)
	}
	return Decimal{n: n}, nil
}

// FromWords reassembles a decimal from its high and low word
// encoding, applying the same range check as FromPacked. This is the
// canonical wire and storage boundary.
func FromWords(hi, lo uint64) (Decimal, error) {
	return FromPacked(int128.New(hi, lo))
}

// FromInt64 returns the decimal equal to v. The scaled result always
// fits: |v| * Scale < 10^28.
func FromInt64(v int64) Decimal {
	return Decimal{n: int128.FromInt64(v).Mul64(Scale)}
}

// FromInt32 returns the decimal equal to v.
func FromInt32(v int32) Decimal {
	return FromInt64(int64(v))
}

// FromUint64 returns the decimal equal to v.
func FromUint64(v uint64) Decimal {
	return Decimal{n: int128.FromUint64(v).Mul64(Scale)}
}

// FromUint32 returns the decimal equal to v.
func FromUint32(v uint32) Decimal {
	return FromUint64(uint64(v))
}

// Packed returns the scaled 128-bit integer.
func (d Decimal) Packed() int128.Int128 { return d.n }

// High returns the high word of the scaled integer.
func (d Decimal) High() uint64 { return d.n.Hi() }

// Low returns the low word of the scaled integer.
func (d Decimal) Low() uint64 { return d.n.Lo() }

// Add returns d + o. Overflow is detected in two stages: a 128-bit
// checked addition first, then the decimal range check. Either
// failure is ErrOutOfRange with both operands in the message.
func (d Decimal) Add(o Decimal) (Decimal, error) {
	sum, ok := d.n.AddChecked(o.n)
	if !ok {
		return Decimal{}, fmt.Errorf("%s + %s wraps 128 bits: %w", d, o, ErrOutOfRange)
	}
	if !inRange(sum) {
		return Decimal{}, fmt.Errorf("%s + %s exceeds %d digits: %w", d, o, Precision, ErrOutOfRange)
	}
	return Decimal{n: sum}, nil
}

// Sub returns d - o. Negating an in-range operand cannot overflow, so
// Sub shares Add's failure modes exactly.
func (d Decimal) Sub(o Decimal) (Decimal, error) {
	return d.Add(o.Neg())
}

// Neg returns -d. The range is symmetric around zero, so negation of
// an in-range value never fails; Neg assumes d is in range.
func (d Decimal) Neg() Decimal {
	return Decimal{n: d.n.Neg()}
}

// Cmp returns -1 if d < o, 0 if d == o, and +1 if d > o. Both
// operands share the same scale, so comparing the scaled integers is
// the total order.
func (d Decimal) Cmp(o Decimal) int {
	return d.n.Cmp(o.n)
}

// Equal reports whether d == o.
func (d Decimal) Equal(o Decimal) bool { return d.n == o.n }

// Less reports whether d < o.
func (d Decimal) Less(o Decimal) bool { return d.Cmp(o) < 0 }

// LessOrEqual reports whether d <= o.
func (d Decimal) LessOrEqual(o Decimal) bool { return d.Cmp(o) <= 0 }

// Greater reports whether d > o.
func (d Decimal) Greater(o Decimal) bool { return d.Cmp(o) > 0 }

// GreaterOrEqual reports whether d >= o.
func (d Decimal) GreaterOrEqual(o Decimal) bool { return d.Cmp(o) >= 0 }

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool { return d.n == (int128.Int128{}) }

// IsNeg reports whether d < 0.
func (d Decimal) IsNeg() bool { return d.n.IsNeg() }

// Hash projects the value to a 64-bit hash over the canonical word
// encoding. Equal values hash equal; nothing else is guaranteed.
func (d Decimal) Hash() uint64 {
	data, _ := d.n.MarshalBinary()
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}
