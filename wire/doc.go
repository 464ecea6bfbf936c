// Package wire provides the block stream used to persist decimal
// values.
//
// Each block is a single tag byte followed by an optional payload:
//
//	| Tag  | Payload             |                      |
//	|------|---------------------|----------------------|
//	| 0x00 | none                | Null value           |
//	| 0x01 | 16 bytes, hi then lo | Decimal word pair   |
//
// The payload is the canonical big-endian word-pair encoding of the
// scaled integer. Decoding revalidates every pair against the decimal
// range, so a stream can never hand an out-of-range value to the
// engine.
package wire
