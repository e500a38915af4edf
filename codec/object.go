package codec

import (
	"github.com/jxon-dev/jxon/errs"
	"github.com/jxon-dev/jxon/internal/keytrack"
	"github.com/jxon-dev/jxon/wire"
)

// appendObject appends an object open marker, each member's key (key-table
// index byte when the key table was given the key up front, otherwise an
// inline string) followed by its value, then the close marker.
func (e *Encoder) appendObject(buf []byte, members []Member) ([]byte, error) {
	e.depth++
	defer func() { e.depth-- }()

	if e.depth > e.cfg.depthLimit {
		return nil, errs.ErrDepthExceeded
	}

	buf = append(buf, wire.ObjectOpen)

	for _, m := range members {
		if idx, ok := e.keyTable.Lookup(m.Key); ok {
			buf = append(buf, byte(idx))
		} else {
			buf = appendString(buf, m.Key)
		}

		var err error
		buf, err = e.appendValue(buf, m.Value)
		if err != nil {
			return nil, err
		}
	}

	return append(buf, wire.Close), nil
}

// decodeObject reads key/value members until the close marker is seen.
//
// A member key is either a key-table index byte, resolved against the
// incrementally-built decoderKeyTable, or an inline string. Duplicate keys
// are rejected when the Decoder was configured with strict duplicate-key
// checking.
func (d *Decoder) decodeObject() ([]Member, error) {
	d.depth++
	defer func() { d.depth-- }()

	if d.depth > d.cfg.depthLimit {
		return nil, errs.ErrDepthExceeded
	}

	var members []Member

	tracker := keytrack.NewTracker()

	for {
		head, err := d.c.PeekByte()
		if err != nil {
			return nil, err
		}

		if head == wire.Close {
			_, _ = d.c.ReadByte()
			return members, nil
		}

		key, err := d.decodeKey()
		if err != nil {
			return nil, err
		}

		if d.cfg.strictDuplicateKeys && tracker.Track(key) {
			return nil, errs.ErrDuplicateKey
		}

		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}

		members = append(members, Member{Key: key, Value: v})
	}
}

// decodeKey reads a single object member key: either a key-table index byte
// or an inline string head.
func (d *Decoder) decodeKey() (string, error) {
	head, err := d.c.PeekByte()
	if err != nil {
		return "", err
	}

	if wire.IsKeyTableIndex(head) {
		_, _ = d.c.ReadByte()
		return d.keys.lookup(int(head))
	}

	return d.decodeInlineString()
}
