package codec

import "math/big"

// Kind identifies which variant of the JXON value model a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBigFloat
	KindBlob
	KindStr
	KindArray
	KindObject
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBigFloat:
		return "bigfloat"
	case KindBlob:
		return "blob"
	case KindStr:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an Object. Objects hold a slice of
// Members rather than a map so that insertion order, required by the data
// model, is preserved without a separate ordering side-channel.
type Member struct {
	Key   string
	Value Value
}

// Value is a tagged sum of every JXON value variant: Null, Bool, Int, Float,
// BigFloat, Blob, Str, Array and Object. The zero Value is KindNull.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	bigNum   *big.Int // BigFloat numerator
	bigDen   *big.Int // BigFloat denominator

	blobVal []byte
	strVal  string
	arr     []Value
	obj     []Member
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Value wrapping b.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int returns a Value wrapping i.
func Int(i int64) Value { return Value{kind: KindInt, intVal: i} }

// Float returns a Value wrapping f.
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// BigFloatRat returns a Value holding an exact rational numerator/denominator
// pair too wide (or too precise) for a binary64, reserved by the data model
// for callers who opt into BigFloat support. numerator and denominator are
// not copied.
func BigFloatRat(numerator, denominator *big.Int) Value {
	return Value{kind: KindBigFloat, bigNum: numerator, bigDen: denominator}
}

// Blob returns a Value wrapping a raw byte sequence. b is not copied.
func Blob(b []byte) Value { return Value{kind: KindBlob, blobVal: b} }

// Str returns a Value wrapping a UTF-8 string.
func Str(s string) Value { return Value{kind: KindStr, strVal: s} }

// Array returns a Value wrapping an ordered sequence of Values. items is not
// copied.
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Object returns a Value wrapping an ordered sequence of key/value members.
// members is not copied.
func Object(members []Member) Value { return Value{kind: KindObject, obj: members} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns v's bool payload and whether v is KindBool.
func (v Value) AsBool() (bool, bool) { return v.boolVal, v.kind == KindBool }

// AsInt returns v's int payload and whether v is KindInt.
func (v Value) AsInt() (int64, bool) { return v.intVal, v.kind == KindInt }

// AsFloat returns v's float payload and whether v is KindFloat.
func (v Value) AsFloat() (float64, bool) { return v.floatVal, v.kind == KindFloat }

// AsBigFloatRat returns v's numerator/denominator payload and whether v is
// KindBigFloat.
func (v Value) AsBigFloatRat() (numerator, denominator *big.Int, ok bool) {
	return v.bigNum, v.bigDen, v.kind == KindBigFloat
}

// AsBlob returns v's byte payload and whether v is KindBlob.
func (v Value) AsBlob() ([]byte, bool) { return v.blobVal, v.kind == KindBlob }

// AsStr returns v's string payload and whether v is KindStr.
func (v Value) AsStr() (string, bool) { return v.strVal, v.kind == KindStr }

// AsArray returns v's element slice and whether v is KindArray.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns v's member slice and whether v is KindObject.
func (v Value) AsObject() ([]Member, bool) { return v.obj, v.kind == KindObject }

// Equal reports whether v and other are equivalent under the data model's
// comparison rules: NaN floats compare equal to NaN, blobs compare
// byte-wise, objects compare as mappings (member order is ignored).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindInt:
		return v.intVal == other.intVal
	case KindFloat:
		if v.floatVal != v.floatVal && other.floatVal != other.floatVal {
			return true // NaN == NaN under this model's equivalence
		}

		return v.floatVal == other.floatVal
	case KindBigFloat:
		return v.bigNum.Cmp(other.bigNum) == 0 && v.bigDen.Cmp(other.bigDen) == 0
	case KindBlob:
		return bytesEqual(v.blobVal, other.blobVal)
	case KindStr:
		return v.strVal == other.strVal
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}

		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return objectsEqual(v.obj, other.obj)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func objectsEqual(a, b []Member) bool {
	if len(a) != len(b) {
		return false
	}

	index := make(map[string]Value, len(b))
	for _, m := range b {
		index[m.Key] = m.Value
	}

	for _, m := range a {
		other, ok := index[m.Key]
		if !ok || !m.Value.Equal(other) {
			return false
		}
	}

	return true
}
