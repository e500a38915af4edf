package wire

import (
	"github.com/jxon-dev/jxon/errs"
	"github.com/jxon-dev/jxon/internal/cursor"
)

// AppendLength appends the narrowest encoding of a non-negative length n to
// buf under the given family head. It is AppendInt with an int argument,
// since lengths reuse the same width-class grammar as signed integers.
func AppendLength(buf []byte, family byte, n int) []byte {
	return AppendInt(buf, family, int64(n))
}

// ReadLength decodes a length field attached to head, failing with
// ErrMalformed if the decoded value is negative (the width classes carry
// signed fields, but a length must never be negative on the wire).
func ReadLength(c *cursor.Cursor, head byte) (int, error) {
	i, err := ReadInt(c, head)
	if err != nil {
		return 0, err
	}

	if i < 0 {
		return 0, errs.ErrMalformed
	}

	return int(i), nil
}
