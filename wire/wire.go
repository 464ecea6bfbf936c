package wire

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/gridquery/fixed/decimal"
)

var Error = errs.Class("wire")

var ErrInvalidTag = Error.New("invalid block tag")

// Block tags.
const (
	TagNull  byte = 0x00
	TagValue byte = 0x01
)

// Encoder writes decimal blocks to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes one value block.
func (e *Encoder) Encode(d decimal.Decimal) (err error) {
	defer Error.WrapP(&err)

	var buf [1 + int128Size]byte
	buf[0] = TagValue
	binary.BigEndian.PutUint64(buf[1:9], d.High())
	binary.BigEndian.PutUint64(buf[9:], d.Low())

	_, err = e.w.Write(buf[:])
	return err
}

// EncodeNull writes one null block.
func (e *Encoder) EncodeNull() (err error) {
	defer Error.WrapP(&err)

	_, err = e.w.Write([]byte{TagNull})
	return err
}

const int128Size = 16

// Decoder reads decimal blocks from a stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads the next block. It returns nil for a null block and
// io.EOF untouched at a clean block boundary; a stream that ends
// mid-block is an error.
func (d *Decoder) Decode() (_ *decimal.Decimal, err error) {
	var tag [1]byte

	_, err = io.ReadFull(d.r, tag[:])
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, Error.Wrap(err)
	}

	switch tag[0] {
	case TagNull:
		return nil, nil
	case TagValue:
		var buf [int128Size]byte

		_, err = io.ReadFull(d.r, buf[:])
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, Error.Wrap(err)
		}

		hi := binary.BigEndian.Uint64(buf[:8])
		lo := binary.BigEndian.Uint64(buf[8:])

		v, err := decimal.FromWords(hi, lo)
		if err != nil {
			return nil, Error.Wrap(err)
		}

		return &v, nil
	}

	return nil, oops.Trace(ErrInvalidTag)
}
