package codec

import (
	"github.com/jxon-dev/jxon/errs"
	"github.com/jxon-dev/jxon/internal/hash"
)

// MaxKeyTableEntries is the key table's fixed capacity: indices 0..127.
const MaxKeyTableEntries = 128

// KeyTable is the encoder-side bounded key-interning table. It is
// constructed once from a caller-supplied key list and consulted on every
// object key the encoder writes; a hit lets the encoder emit a one-byte
// index instead of the full inline string.
type KeyTable struct {
	keys  []string
	index map[uint64]int // key hash -> table index, for O(1) reverse lookup
}

// NewKeyTable builds a KeyTable from an ordered list of frequent keys. Keys
// past the 128-entry limit are silently dropped from the table; the encoder
// falls back to inline strings for them.
func NewKeyTable(keys []string) *KeyTable {
	kt := &KeyTable{index: make(map[uint64]int, len(keys))}

	for _, k := range keys {
		kt.register(k)
	}

	return kt
}

func (kt *KeyTable) register(k string) (int, bool) {
	if len(kt.keys) >= MaxKeyTableEntries {
		return 0, false
	}

	idx := len(kt.keys)
	kt.keys = append(kt.keys, k)
	kt.index[hash.ID(k)] = idx

	return idx, true
}

// Lookup returns the table index registered for k, if any. A hash match
// against a different string (a collision) is treated as a miss, so the
// encoder falls back to an inline string rather than emitting the wrong key.
func (kt *KeyTable) Lookup(k string) (int, bool) {
	idx, ok := kt.index[hash.ID(k)]
	if !ok || kt.keys[idx] != k {
		return 0, false
	}

	return idx, true
}

// Keys returns the table's entries in registration order.
func (kt *KeyTable) Keys() []string {
	return kt.keys
}

// decoderKeyTable is the decoder-side reconstruction of the key table,
// populated incrementally as registration entries are read from the stream.
type decoderKeyTable struct {
	keys []string
}

// register installs key at index, growing the backing slice as needed.
func (t *decoderKeyTable) register(index int, key string) error {
	if index < 0 || index >= MaxKeyTableEntries {
		return errs.ErrMalformed
	}

	for len(t.keys) <= index {
		t.keys = append(t.keys, "")
	}

	t.keys[index] = key

	return nil
}

// lookup returns the key registered at index.
func (t *decoderKeyTable) lookup(index int) (string, error) {
	if index < 0 || index >= len(t.keys) {
		return "", errs.ErrKeyTableIndex
	}

	return t.keys[index], nil
}
