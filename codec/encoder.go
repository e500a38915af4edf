package codec

import (
	"github.com/jxon-dev/jxon/internal/options"
	"github.com/jxon-dev/jxon/internal/pool"
)

// Encoder walks a Value tree once and emits its JXON byte encoding.
//
// An Encoder may be reused for successive calls to Encode; each call emits
// the key-table registration entries again. It is not safe for concurrent
// use.
type Encoder struct {
	cfg      *EncoderConfig
	keyTable *KeyTable
	depth    int
}

// NewEncoder creates an Encoder configured by opts.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:      cfg,
		keyTable: NewKeyTable(cfg.keys),
	}, nil
}

// Encode returns v's JXON encoding, preceded by any key-table registration
// entries the Encoder was configured with.
func (e *Encoder) Encode(v Value) ([]byte, error) {
	bb := pool.Get()
	defer pool.Put(bb)

	for idx, key := range e.keyTable.Keys() {
		bb.B = appendKeyRegistration(bb.B, key, idx)
	}

	var err error
	bb.B, err = e.appendValue(bb.B, v)
	if err != nil {
		return nil, err
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// Encode is a convenience one-shot wrapper around NewEncoder(opts...).Encode(v).
func Encode(v Value, opts ...EncoderOption) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(v)
}
