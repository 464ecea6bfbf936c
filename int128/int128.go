// Package int128 provides a signed 128-bit integer stored as a pair
// of 64-bit words in two's complement. It exists to give the decimal
// package an exact, auditable substitute for hardware 128-bit
// arithmetic: carry-checked addition and subtraction, two's-complement
// negation, and truncating division by a 64-bit divisor.
package int128

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"

	"github.com/zeebo/errs"
)

var Error = errs.Class("int128")

// Size is the width of the binary encoding in bytes.
const Size = 16

// Largest and smallest representable values.
var (
	Max = New(0x7FFF_FFFF_FFFF_FFFF, 0xFFFF_FFFF_FFFF_FFFF)
	Min = New(0x8000_0000_0000_0000, 0x0000_0000_0000_0000)
)

// Int128 is a signed 128-bit integer. The concatenation of the high
// and low words, interpreted as two's complement, is the value.
//
// The zero value is 0. Int128 is comparable with ==; there is exactly
// one representation per value.
type Int128 struct {
	hi uint64
	lo uint64
}

// New returns the integer with the given high and low words.
func New(hi, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// FromInt64 returns v widened to 128 bits.
func FromInt64(v int64) Int128 {
	if v < 0 {
		return Int128{hi: ^uint64(0), lo: uint64(v)}
	}
	return Int128{lo: uint64(v)}
}

// FromUint64 returns v widened to 128 bits.
func FromUint64(v uint64) Int128 {
	return Int128{lo: v}
}

// Hi returns the high word.
func (x Int128) Hi() uint64 { return x.hi }

// Lo returns the low word.
func (x Int128) Lo() uint64 { return x.lo }

// IsNeg reports whether x is negative.
func (x Int128) IsNeg() bool {
	return x.hi>>63 == 1
}

// Sign returns -1, 0, or +1.
func (x Int128) Sign() int {
	if x == (Int128{}) {
		return 0
	}
	if x.IsNeg() {
		return -1
	}
	return 1
}

// Neg returns -x. Negation wraps at Min: Min.Neg() == Min.
func (x Int128) Neg() Int128 {
	lo := ^x.lo + 1
	hi := ^x.hi
	if lo == 0 {
		hi++
	}
	return Int128{hi: hi, lo: lo}
}

// Abs returns the magnitude of x as an Int128. Abs wraps at Min.
func (x Int128) Abs() Int128 {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// Add returns x + y with wraparound.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	return Int128{hi: hi, lo: lo}
}

// Sub returns x - y with wraparound.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	return Int128{hi: hi, lo: lo}
}

// AddChecked returns x + y and reports whether the signed sum fits in
// 128 bits. Wraparound happens exactly when the operands share a sign
// and the sum does not.
func (x Int128) AddChecked(y Int128) (Int128, bool) {
	sum := x.Add(y)
	if (x.hi^y.hi)>>63 == 0 && (x.hi^sum.hi)>>63 == 1 {
		return Int128{}, false
	}
	return sum, true
}

// SubChecked returns x - y and reports whether the signed difference
// fits in 128 bits.
func (x Int128) SubChecked(y Int128) (Int128, bool) {
	diff := x.Sub(y)
	if (x.hi^y.hi)>>63 == 1 && (x.hi^diff.hi)>>63 == 1 {
		return Int128{}, false
	}
	return diff, true
}

// Cmp returns -1 if x < y, 0 if x == y, and +1 if x > y, by signed
// comparison.
func (x Int128) Cmp(y Int128) int {
	if x == y {
		return 0
	}
	xh, yh := int64(x.hi), int64(y.hi)
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.lo < y.lo:
		return -1
	}
	return 1
}

// Mul64 returns x * m, keeping the low 128 bits of the product. The
// result is exact whenever the true product fits in 128 bits, for
// negative x included.
func (x Int128) Mul64(m uint64) Int128 {
	hi, lo := bits.Mul64(x.lo, m)
	hi += x.hi * m
	return Int128{hi: hi, lo: lo}
}

// QuoRem64 returns the quotient and remainder of x / d, truncating
// toward zero. The remainder carries the sign of x. d must be nonzero
// and at most MaxInt64.
func (x Int128) QuoRem64(d uint64) (Int128, int64) {
	neg := x.IsNeg()
	m := x.Abs()

	qhi := m.hi / d
	rem := m.hi % d
	qlo, rlo := bits.Div64(rem, m.lo, d)

	q := Int128{hi: qhi, lo: qlo}
	r := int64(rlo)
	if neg {
		q = q.Neg()
		r = -r
	}
	return q, r
}

// Float64 returns the nearest float64 to x, computed as
// hi*2^64 + lo on the magnitude. Deterministic but not exact beyond
// 53 bits of precision.
func (x Int128) Float64() float64 {
	neg := x.IsNeg()
	m := x.Abs()
	f := float64(m.hi)*0x1p64 + float64(m.lo)
	if neg {
		f = -f
	}
	return f
}

// SetFloat64 sets x to f truncated toward zero. It reports false if
// f is not finite or its truncation does not fit in 128 bits.
func (x *Int128) SetFloat64(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	f = math.Trunc(f)
	if f >= 0x1p127 || f <= -0x1p127 {
		return false
	}
	m := math.Abs(f)
	// Splitting at 2^64 is exact: the high quotient and the scaled
	// subtraction only move bits already present in the mantissa.
	hi := math.Floor(m / 0x1p64)
	lo := m - hi*0x1p64
	v := Int128{hi: uint64(hi), lo: uint64(lo)}
	if f < 0 {
		v = v.Neg()
	}
	*x = v
	return true
}

// FromFloat64 converts f to an Int128, truncating toward zero. ok is
// false if f is not finite or does not fit in 128 bits.
func FromFloat64(f float64) (x Int128, ok bool) {
	ok = x.SetFloat64(f)
	return x, ok
}

// BigInt returns x as a big.Int.
func (x Int128) BigInt() *big.Int {
	neg := x.IsNeg()
	m := x.Abs()
	b := new(big.Int).SetUint64(m.hi)
	b.Lsh(b, 64).Add(b, new(big.Int).SetUint64(m.lo))
	if neg {
		b.Neg(b)
	}
	return b
}

// FromBigInt converts b to an Int128. ok is false if the magnitude of
// b needs more than 127 bits (Min itself is rejected; callers in this
// module never produce it).
func FromBigInt(b *big.Int) (Int128, bool) {
	abs := new(big.Int).Abs(b)
	if abs.BitLen() > 127 {
		return Int128{}, false
	}
	var buf [Size]byte
	abs.FillBytes(buf[:])
	x := Int128{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}
	if b.Sign() < 0 {
		x = x.Neg()
	}
	return x, true
}

// String returns the decimal representation of x.
func (x Int128) String() string {
	return x.BigInt().String()
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is
// exactly 16 bytes: the high word then the low word, big-endian.
func (x Int128) MarshalBinary() (data []byte, err error) {
	data = make([]byte, Size)
	binary.BigEndian.PutUint64(data[:8], x.hi)
	binary.BigEndian.PutUint64(data[8:], x.lo)
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int128) UnmarshalBinary(data []byte) (err error) {
	if len(data) != Size {
		return Error.New("invalid length: %d", len(data))
	}
	x.hi = binary.BigEndian.Uint64(data[:8])
	x.lo = binary.BigEndian.Uint64(data[8:])
	return nil
}
