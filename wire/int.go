package wire

import (
	"github.com/jxon-dev/jxon/endian"
	"github.com/jxon-dev/jxon/errs"
	"github.com/jxon-dev/jxon/internal/cursor"
)

// engine is the wire format's fixed byte order; JXON mandates little-endian
// for every multi-byte field.
var engine = endian.GetLittleEndianEngine()

// AppendInt appends the narrowest encoding of i to buf under the given
// family head, and returns the extended slice. family is ORed with the width
// nibble: the codec passes FamilyInt, FamilyBlob, FamilyStr or FamilyKeyReg,
// and AppendBigInt passes 0x00 for a bare width byte. The width nibble is
// chosen by this function, never passed in.
func AppendInt(buf []byte, family byte, i int64) []byte {
	switch {
	case i >= 0 && i <= 9:
		return append(buf, family|byte(i))
	case i == -1:
		return append(buf, family|WidthNegOne)
	case i >= -128 && i <= 127:
		buf = append(buf, family|WidthInt8)
		return append(buf, byte(int8(i)))
	case i >= -32768 && i <= 32767:
		buf = append(buf, family|WidthInt16)
		return engine.AppendUint16(buf, uint16(int16(i)))
	case i >= -2147483648 && i <= 2147483647:
		buf = append(buf, family|WidthInt32)
		return engine.AppendUint32(buf, uint32(int32(i)))
	default:
		buf = append(buf, family|WidthInt64)
		return engine.AppendUint64(buf, uint64(i))
	}
}

// ReadInt decodes the integer attached to head, whose width nibble was
// already read by the caller. The head's family nibble is ignored; callers
// dispatch on it separately.
func ReadInt(c *cursor.Cursor, head byte) (int64, error) {
	low := Width(head)

	switch {
	case low <= 9:
		return int64(low), nil
	case low == WidthNegOne:
		return -1, nil
	case low == WidthBigInt:
		return 0, errs.ErrUnsupported
	}

	switch low {
	case WidthInt8:
		b, err := c.ReadN(1)
		if err != nil {
			return 0, err
		}

		return int64(int8(b[0])), nil
	case WidthInt16:
		b, err := c.ReadN(2)
		if err != nil {
			return 0, err
		}

		return int64(int16(engine.Uint16(b))), nil
	case WidthInt32:
		b, err := c.ReadN(4)
		if err != nil {
			return 0, err
		}

		return int64(int32(engine.Uint32(b))), nil
	case WidthInt64:
		b, err := c.ReadN(8)
		if err != nil {
			return 0, err
		}

		return int64(engine.Uint64(b)), nil
	default:
		return 0, errs.ErrMalformed
	}
}
