// Package errs defines the sentinel errors returned by the wire, codec and
// root jxon packages.
//
// Call sites wrap a sentinel with fmt.Errorf("%w: ...", errs.ErrX, detail...)
// to add context while keeping errors.Is(err, errs.ErrX) working for callers
// that only care about the error kind.
package errs

import "errors"

var (
	// ErrUnexpectedEnd is returned when a decode operation runs out of input
	// bytes before a value is fully read.
	ErrUnexpectedEnd = errors.New("jxon: unexpected end of input")

	// ErrMalformed is returned when a head byte or field encodes a
	// combination the grammar does not permit, such as a reserved head byte
	// or a negative length. A wider-than-necessary width class is accepted.
	ErrMalformed = errors.New("jxon: malformed input")

	// ErrInvalidUTF8 is returned when a decoded string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("jxon: invalid UTF-8")

	// ErrUnsupported is returned when a head byte names a family or width
	// class this decoder does not implement.
	ErrUnsupported = errors.New("jxon: unsupported encoding")

	// ErrTypeError is returned when the encoder is given a Value whose Kind
	// is not one of the value model's variants.
	ErrTypeError = errors.New("jxon: type error")

	// ErrDepthExceeded is returned when a nested array or object exceeds the
	// configured maximum nesting depth.
	ErrDepthExceeded = errors.New("jxon: depth exceeded")

	// ErrDuplicateKey is returned when an object contains the same key
	// twice.
	ErrDuplicateKey = errors.New("jxon: duplicate key")

	// ErrKeyTableFull names a per-document key table with no room left in
	// its 128 entries. The codec does not return it: the encoder writes keys
	// past the limit inline, and the decoder rejects a registration index of
	// 128 or more with ErrMalformed.
	ErrKeyTableFull = errors.New("jxon: key table full")

	// ErrKeyTableIndex is returned when an object member references a key
	// table index that has not been registered yet.
	ErrKeyTableIndex = errors.New("jxon: key table index out of range")
)
