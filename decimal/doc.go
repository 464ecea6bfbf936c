// Package decimal provides the fixed-point decimal scalar used by the
// query engine's type system.
//
// A Decimal is an exact base-10 number with a fixed number of
// fractional digits:
//
//	number = scaled / Scale
//
// Where scaled is a signed 128-bit integer and Scale is 10^FracDigits.
// The scaled integer is bounded to Precision total decimal digits:
//
//	-(10^Precision - 1) <= scaled <= 10^Precision - 1
//
// The bound is stricter than the full 128-bit range on purpose. The
// headroom lets one checked 128-bit addition run in the full 128-bit
// domain before the decimal range check, so overflow is detected in
// two independent stages: raw two's-complement wraparound first, then
// decimal-bound excess.
//
// Encoding
//
// A value is exactly represented by the ordered pair of its high and
// low 64-bit words, reconstructible with FromWords and inspectable
// with High and Low. That pair, big-endian, is the canonical 16-byte
// encoding used by the msgpack extension codec here and by the wire
// package's block stream.
//
// Values are immutable: every operation returns a new Decimal or an
// error, and concurrent reads need no synchronization. Two values are
// equal exactly when their word pairs are equal, so == agrees with
// Equal and a Decimal can serve directly as a map key.
package decimal
