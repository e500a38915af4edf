package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/jxon-dev/jxon/errs"
	"github.com/jxon-dev/jxon/internal/cursor"
	"github.com/jxon-dev/jxon/internal/options"
	"github.com/jxon-dev/jxon/wire"
)

// Decoder reads one JXON value (preceded by any number of key-table
// registration entries) from a byte slice.
//
// A Decoder is not reusable across calls to Decode and is not safe for
// concurrent use; construct one per decode operation.
type Decoder struct {
	c     *cursor.Cursor
	keys  decoderKeyTable
	depth int
	cfg   *DecoderConfig
}

// NewDecoder creates a Decoder configured by opts.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{cfg: cfg}, nil
}

// looksLikeJXON reports whether the first byte of data is a plausible JXON
// head byte, per the decoder's document-start heuristic: any byte in
// 0x80..0xFD except the reserved 0xEF.
func looksLikeJXON(first byte) bool {
	return first >= 0x80 && first < 0xFE && first != 0xEF
}

// Decode reads one value from data. If data does not look like JXON and
// JSON fallback is enabled, it is parsed as JSON instead and converted to
// the Value model.
func (d *Decoder) Decode(data []byte) (Value, error) {
	if len(data) == 0 {
		return Value{}, errs.ErrUnexpectedEnd
	}

	if !looksLikeJXON(data[0]) {
		if !d.cfg.allowJSONFallback {
			return Value{}, fmt.Errorf("%w: head byte 0x%02x is not a valid JXON head", errs.ErrMalformed, data[0])
		}

		var raw interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return Value{}, fmt.Errorf("%w: JSON fallback failed: %v", errs.ErrMalformed, err)
		}

		return fromJSON(raw), nil
	}

	d.c = cursor.New(data)

	v, err := d.decodeValue()
	if err != nil {
		return Value{}, err
	}

	return v, nil
}

// Decode is a convenience one-shot wrapper around NewDecoder(opts...).Decode(data).
func Decode(data []byte, opts ...DecoderOption) (Value, error) {
	dec, err := NewDecoder(opts...)
	if err != nil {
		return Value{}, err
	}

	return dec.Decode(data)
}

// decodeValue reads one value's encoding, transparently consuming any
// leading key-table registration entries: they install a key at an index
// and never themselves produce a value, so the loop continues to the next
// head byte after each one.
func (d *Decoder) decodeValue() (Value, error) {
	for {
		head, err := d.c.ReadByte()
		if err != nil {
			return Value{}, err
		}

		if wire.Family(head) == wire.FamilyKeyReg {
			if err := d.decodeKeyRegistration(head); err != nil {
				return Value{}, err
			}

			continue
		}

		return d.decodeValueHead(head)
	}
}

// decodeValueHead dispatches on a head byte already known not to be a
// key-table registration entry.
func (d *Decoder) decodeValueHead(head byte) (Value, error) {
	switch head {
	case wire.Null:
		return Null(), nil
	case wire.False:
		return Bool(false), nil
	case wire.True:
		return Bool(true), nil
	case wire.ObjectOpen:
		members, err := d.decodeObject()
		if err != nil {
			return Value{}, err
		}

		return Object(members), nil
	case wire.ArrayOpen:
		items, err := d.decodeArray()
		if err != nil {
			return Value{}, err
		}

		return Array(items), nil
	case wire.FloatZero:
		return Float(0), nil
	case wire.Float32:
		f, err := d.decodeBinary32()
		if err != nil {
			return Value{}, err
		}

		return Float(f), nil
	case wire.Float64:
		f, err := d.decodeBinary64()
		if err != nil {
			return Value{}, err
		}

		return Float(f), nil
	case wire.BigFloat:
		return d.decodeBigFloat()
	case wire.Close:
		return Value{}, fmt.Errorf("%w: unexpected close marker", errs.ErrMalformed)
	}

	switch wire.Family(head) {
	case wire.FamilyInt:
		i, err := wire.ReadInt(d.c, head)
		if err != nil {
			return Value{}, err
		}

		return Int(i), nil
	case wire.FamilyBlob:
		n, err := wire.ReadLength(d.c, head)
		if err != nil {
			return Value{}, err
		}

		b, err := d.c.ReadN(n)
		if err != nil {
			return Value{}, err
		}

		out := make([]byte, n)
		copy(out, b)

		return Blob(out), nil
	case wire.FamilyStr:
		s, err := d.decodeStringBody(head)
		if err != nil {
			return Value{}, err
		}

		return Str(s), nil
	}

	return Value{}, fmt.Errorf("%w: head byte 0x%02x is not a valid value head", errs.ErrMalformed, head)
}

// decodeKeyRegistration reads a registration entry's key and index and
// installs it in the decoder's key table.
func (d *Decoder) decodeKeyRegistration(head byte) error {
	key, err := d.decodeStringBody(head)
	if err != nil {
		return err
	}

	idx, err := d.c.ReadByte()
	if err != nil {
		return err
	}

	return d.keys.register(int(idx), key)
}

// decodeInlineString reads an inline string value head, requiring it be the
// FamilyStr family rather than any Int/Blob/KeyReg head that happens to
// share the length grammar.
func (d *Decoder) decodeInlineString() (string, error) {
	head, err := d.c.ReadByte()
	if err != nil {
		return "", err
	}

	if wire.Family(head) != wire.FamilyStr {
		return "", fmt.Errorf("%w: expected an inline string head, got 0x%02x", errs.ErrMalformed, head)
	}

	return d.decodeStringBody(head)
}

// decodeStringBody reads the length, UTF-8 bytes and trailing NUL shared by
// inline strings (FamilyStr) and key-table registration entries
// (FamilyKeyReg).
func (d *Decoder) decodeStringBody(head byte) (string, error) {
	n, err := wire.ReadLength(d.c, head)
	if err != nil {
		return "", err
	}

	b, err := d.c.ReadN(n)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	nul, err := d.c.ReadByte()
	if err != nil {
		return "", err
	}

	if nul != 0x00 {
		return "", fmt.Errorf("%w: string missing trailing NUL", errs.ErrMalformed)
	}

	return string(b), nil
}

func (d *Decoder) decodeBinary32() (float64, error) {
	b, err := d.c.ReadN(4)
	if err != nil {
		return 0, err
	}

	return float64(math.Float32frombits(engine.Uint32(b))), nil
}

func (d *Decoder) decodeBinary64() (float64, error) {
	b, err := d.c.ReadN(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(engine.Uint64(b)), nil
}

func (d *Decoder) decodeBigFloat() (Value, error) {
	if !d.cfg.bigFloatSupport {
		return Value{}, errs.ErrUnsupported
	}

	num, err := wire.ReadBigInt(d.c)
	if err != nil {
		return Value{}, err
	}

	den, err := wire.ReadBigInt(d.c)
	if err != nil {
		return Value{}, err
	}

	return BigFloatRat(num, den), nil
}

// fromJSON converts a value produced by encoding/json's default unmarshal
// (map[string]interface{}, []interface{}, float64, string, bool, nil) into
// the Value model, used by the JSON fallback path.
func fromJSON(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case float64:
		if t == float64(int64(t)) {
			return Int(int64(t))
		}

		return Float(t)
	case string:
		return Str(t)
	case []interface{}:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = fromJSON(e)
		}

		return Array(items)
	case map[string]interface{}:
		members := make([]Member, 0, len(t))
		for k, v := range t {
			members = append(members, Member{Key: k, Value: fromJSON(v)})
		}

		return Object(members)
	default:
		return Null()
	}
}
