package codec

import (
	"github.com/jxon-dev/jxon/errs"
	"github.com/jxon-dev/jxon/wire"
)

// appendArray appends an array open marker, each element's encoding in
// order, then the close marker.
func (e *Encoder) appendArray(buf []byte, items []Value) ([]byte, error) {
	e.depth++
	defer func() { e.depth-- }()

	if e.depth > e.cfg.depthLimit {
		return nil, errs.ErrDepthExceeded
	}

	buf = append(buf, wire.ArrayOpen)

	var err error
	for _, item := range items {
		buf, err = e.appendValue(buf, item)
		if err != nil {
			return nil, err
		}
	}

	return append(buf, wire.Close), nil
}

// decodeArray reads elements until the close marker is seen and returns them
// as an ordered slice.
func (d *Decoder) decodeArray() ([]Value, error) {
	d.depth++
	defer func() { d.depth-- }()

	if d.depth > d.cfg.depthLimit {
		return nil, errs.ErrDepthExceeded
	}

	var items []Value

	for {
		head, err := d.c.PeekByte()
		if err != nil {
			return nil, err
		}

		if head == wire.Close {
			_, _ = d.c.ReadByte()
			return items, nil
		}

		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}

		items = append(items, v)
	}
}
