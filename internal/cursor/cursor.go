// Package cursor provides a minimal forward-scanning read cursor over an
// in-memory byte slice, used by the decode path instead of ad-hoc offset
// arithmetic.
package cursor

import (
	"github.com/jxon-dev/jxon/errs"
)

// Cursor reads sequentially from a fixed byte slice. It never copies the
// underlying data; slices returned by ReadN alias it directly.
type Cursor struct {
	data []byte
	pos  int
}

// New creates a Cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

// Done reports whether the cursor has reached the end of the buffer.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.data)
}

// ReadByte reads and returns the next byte, failing with ErrUnexpectedEnd if
// the cursor is already at the end.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, errs.ErrUnexpectedEnd
	}

	b := c.data[c.pos]
	c.pos++

	return b, nil
}

// PeekByte returns the next byte without advancing the cursor.
func (c *Cursor) PeekByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, errs.ErrUnexpectedEnd
	}

	return c.data[c.pos], nil
}

// ReadN reads and returns the next n bytes, aliasing the underlying buffer.
// Fails with ErrUnexpectedEnd if fewer than n bytes remain.
func (c *Cursor) ReadN(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, errs.ErrUnexpectedEnd
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}
