package decimal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gridquery/fixed/int128"
)

const (
	// One guard digit of extra precision for float conversion. The
	// rounding below is expressed through these constants so a
	// different FracDigits only changes them, not the algorithm.
	guardBase  = 10
	guardScale = Scale * guardBase
	guardHalf  = guardBase / 2

	// halfUnit is Scale/2, the half-away-from-zero rounding offset
	// for narrowing conversions.
	halfUnit = Scale / 2

	// floatLimit is 10^IntDigits, the loose magnitude pre-check for
	// float input. Anything at or beyond it cannot fit the integer
	// digit budget; the exact check still runs afterwards.
	floatLimit = 1e30
)

// Float64 returns the nearest float64 to d, computed as
// intPart + fracPart/Scale with each part cast to float64 before the
// division. Deterministic, but not bit-exact beyond float64
// precision.
func (d Decimal) Float64() float64 {
	q, r := d.n.QuoRem64(Scale)
	return q.Float64() + float64(r)/float64(Scale)
}

// FromFloat64 converts x to a decimal, rounding the fractional part
// to FracDigits digits, half away from zero. It fails with
// ErrNonFinite if x is NaN or infinite and with ErrOutOfRange if x
// does not fit Precision digits.
func FromFloat64(x float64) (Decimal, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Decimal{}, fmt.Errorf("float %v: %w", x, ErrNonFinite)
	}
	if x >= floatLimit || x <= -floatLimit {
		return Decimal{}, fmt.Errorf("float %v: %w", x, ErrOutOfRange)
	}

	ip := math.Trunc(x)
	frac := int64((x - ip) * guardScale)
	if x >= 0 {
		frac = (frac + guardHalf) / guardBase
	} else {
		frac = (frac - guardHalf) / guardBase
	}

	n, _ := int128.FromFloat64(ip) // |ip| < 10^30 always fits
	n = n.Mul64(Scale).Add(int128.FromInt64(frac))

	d, err := FromPacked(n)
	if err != nil {
		return Decimal{}, fmt.Errorf("float %v: %w", x, ErrOutOfRange)
	}
	return d, nil
}

// rounded returns the scaled integer rounded to whole units, half
// away from zero. |d| <= MaxValue leaves headroom for the offset, so
// the addition cannot wrap.
func (d Decimal) rounded() int128.Int128 {
	n := d.n
	if n.IsNeg() {
		n = n.Sub(int128.FromInt64(halfUnit))
	} else {
		n = n.Add(int128.FromInt64(halfUnit))
	}
	q, _ := n.QuoRem64(Scale)
	return q
}

func (d Decimal) errNarrow(target string) error {
	return fmt.Errorf("%s does not fit %s: %w", d, target, ErrOutOfRange)
}

// Int64 rounds d to the nearest integer, half away from zero, and
// fails with ErrOutOfRange if the result does not fit an int64.
func (d Decimal) Int64() (int64, error) {
	q := d.rounded()
	if q.Cmp(int128.FromInt64(math.MaxInt64)) > 0 || q.Cmp(int128.FromInt64(math.MinInt64)) < 0 {
		return 0, d.errNarrow("int64")
	}
	return int64(q.Lo()), nil
}

// Int32 rounds d to the nearest integer, half away from zero, and
// fails with ErrOutOfRange if the result does not fit an int32.
func (d Decimal) Int32() (int32, error) {
	q := d.rounded()
	if q.Cmp(int128.FromInt64(math.MaxInt32)) > 0 || q.Cmp(int128.FromInt64(math.MinInt32)) < 0 {
		return 0, d.errNarrow("int32")
	}
	return int32(q.Lo()), nil
}

// Uint64 rounds d to the nearest integer, half away from zero, and
// fails with ErrOutOfRange if the result does not fit a uint64.
func (d Decimal) Uint64() (uint64, error) {
	q := d.rounded()
	if q.IsNeg() || q.Cmp(int128.FromUint64(math.MaxUint64)) > 0 {
		return 0, d.errNarrow("uint64")
	}
	return q.Lo(), nil
}

// Uint32 rounds d to the nearest integer, half away from zero, and
// fails with ErrOutOfRange if the result does not fit a uint32.
func (d Decimal) Uint32() (uint32, error) {
	q := d.rounded()
	if q.IsNeg() || q.Cmp(int128.FromInt64(math.MaxUint32)) > 0 {
		return 0, d.errNarrow("uint32")
	}
	return uint32(q.Lo()), nil
}

// String returns the exact decimal form of d, with trailing
// fractional zeros trimmed and no exponent.
func (d Decimal) String() string {
	q, r := d.n.QuoRem64(Scale)
	if r == 0 {
		return q.String()
	}

	if r < 0 {
		r = -r
	}
	frac := strconv.FormatInt(r, 10)
	if pad := FracDigits - len(frac); pad > 0 {
		frac = strings.Repeat("0", pad) + frac
	}
	frac = strings.TrimRight(frac, "0")

	var sb strings.Builder
	if d.n.IsNeg() {
		sb.WriteByte('-')
	}
	sb.WriteString(q.Abs().String())
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}
