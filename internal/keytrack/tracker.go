// Package keytrack detects duplicate object keys while decoding a single
// JXON object, using a fast hash instead of a linear string scan.
package keytrack

import (
	"github.com/jxon-dev/jxon/internal/hash"
)

// Tracker tracks the keys seen so far within one object being decoded and
// reports a duplicate as soon as it reappears. It is scoped to a single
// object: callers construct one per decode_object call (or Reset an
// existing one), never share it across objects.
type Tracker struct {
	seen map[uint64]string // key hash -> key string, for the rare case of a hash collision
}

// NewTracker creates a new duplicate-key tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seen: make(map[uint64]string),
	}
}

// Track records key and reports whether it is a duplicate of one already
// tracked in this object. A hash collision between two distinct keys is not
// a duplicate; it falls through to a direct string comparison.
func (t *Tracker) Track(key string) (duplicate bool) {
	h := hash.ID(key)

	existing, exists := t.seen[h]
	if exists {
		if existing == key {
			return true
		}
		// Distinct keys sharing a hash: keep the first, let the second through.
		return false
	}

	t.seen[h] = key

	return false
}

// Reset clears all tracked keys, preserving the map's allocated buckets so
// the tracker can be reused across objects in the same decode.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
}
