package decimal

import (
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gridquery/fixed/int128"
)

// ExtID is the msgpack extension type for decimal values. The payload
// is the canonical 16-byte word encoding.
const ExtID = 2

// MarshalMsgpack implements a custom msgpack marshaler.
func (d Decimal) MarshalMsgpack() ([]byte, error) {
	return d.n.MarshalBinary()
}

// UnmarshalMsgpack implements a custom msgpack unmarshaler. The
// decoded words pass through the same range check as FromWords.
func (d *Decimal) UnmarshalMsgpack(data []byte) error {
	var n int128.Int128
	if err := n.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("msgpack: can't decode decimal payload (%x): %w", data, err)
	}
	v, err := FromPacked(n)
	if err != nil {
		return fmt.Errorf("msgpack: %w", err)
	}
	*d = v
	return nil
}

func decimalEncoder(e *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	dec := v.Interface().(Decimal)

	return dec.MarshalMsgpack()
}

func decimalDecoder(d *msgpack.Decoder, v reflect.Value, extLen int) error {
	b := make([]byte, extLen)

	switch n, err := d.Buffered().Read(b); {
	case err != nil:
		return err
	case n < extLen:
		return fmt.Errorf("msgpack: unexpected end of stream after %d decimal bytes", n)
	}

	ptr := v.Addr().Interface().(*Decimal)
	return ptr.UnmarshalMsgpack(b)
}

func init() {
	msgpack.RegisterExtDecoder(ExtID, Decimal{}, decimalDecoder)
	msgpack.RegisterExtEncoder(ExtID, Decimal{}, decimalEncoder)
}
