package codec

import (
	"math"

	"github.com/jxon-dev/jxon/endian"
	"github.com/jxon-dev/jxon/errs"
	"github.com/jxon-dev/jxon/internal/rational"
	"github.com/jxon-dev/jxon/wire"
)

// engine is the wire format's fixed byte order.
var engine = endian.GetLittleEndianEngine()

// appendValue dispatches on v's Kind and appends its encoding to buf.
func (e *Encoder) appendValue(buf []byte, v Value) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(buf, wire.Null), nil
	case KindBool:
		if v.boolVal {
			return append(buf, wire.True), nil
		}

		return append(buf, wire.False), nil
	case KindInt:
		return wire.AppendInt(buf, wire.FamilyInt, v.intVal), nil
	case KindFloat:
		return appendFloat(buf, v.floatVal), nil
	case KindBigFloat:
		if !e.cfg.bigFloatSupport {
			return nil, errs.ErrUnsupported
		}

		buf = append(buf, wire.BigFloat)
		buf = wire.AppendBigInt(buf, v.bigNum)
		buf = wire.AppendBigInt(buf, v.bigDen)

		return buf, nil
	case KindBlob:
		buf = wire.AppendLength(buf, wire.FamilyBlob, len(v.blobVal))
		return append(buf, v.blobVal...), nil
	case KindStr:
		return appendString(buf, v.strVal), nil
	case KindArray:
		return e.appendArray(buf, v.arr)
	case KindObject:
		return e.appendObject(buf, v.obj)
	default:
		return nil, errs.ErrTypeError
	}
}

// appendString appends an inline string value: length, UTF-8 bytes, NUL.
func appendString(buf []byte, s string) []byte {
	buf = wire.AppendLength(buf, wire.FamilyStr, len(s))
	buf = append(buf, s...)

	return append(buf, 0x00)
}

// appendKeyRegistration appends a key-table registration entry: length,
// UTF-8 bytes, NUL, then the assigned index byte.
func appendKeyRegistration(buf []byte, key string, index int) []byte {
	buf = wire.AppendLength(buf, wire.FamilyKeyReg, len(key))
	buf = append(buf, key...)
	buf = append(buf, 0x00)

	return append(buf, byte(index))
}

// appendFloat implements the encoder's float classification algorithm:
// zero, NaN/Inf, binary32, otherwise binary64, in that order.
func appendFloat(buf []byte, f float64) []byte {
	if f == 0 {
		return append(buf, wire.FloatZero)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return appendBinary32(buf, f)
	}

	r := rational.FromFloat64(f)

	if r.FitsBinary32() {
		return appendBinary32(buf, f)
	}

	// Every finite float64 fits binary64 exactly by construction (its own
	// mantissa never exceeds 53 significant bits), so the BigFloat fallback
	// is unreachable from this path; it exists for the KindBigFloat variant.
	return appendBinary64(buf, f)
}

func appendBinary32(buf []byte, f float64) []byte {
	buf = append(buf, wire.Float32)
	return engine.AppendUint32(buf, math.Float32bits(float32(f)))
}

func appendBinary64(buf []byte, f float64) []byte {
	buf = append(buf, wire.Float64)
	return engine.AppendUint64(buf, math.Float64bits(f))
}
