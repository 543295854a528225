// Package collision tracks xxHash64 key hashes and detects hash collisions
// during Object construction, mirroring the teacher's metric-name collision
// tracker but applied to BOS object keys instead of time-series metric
// names.
package collision

import (
	"slices"

	"github.com/mintpond/bos/errs"
)

// Tracker tracks object keys and their hashes, detecting both true
// duplicate keys (same string) and hash collisions (different strings,
// same hash) while a single Object is being built.
type Tracker struct {
	keys         map[uint64]string // hash -> most recently tracked key with that hash
	keyList      []string          // ordered list of keys, for insertion order
	hasCollision bool              // whether a hash collision has been detected
}

// NewTracker creates a new key collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:    make(map[uint64]string),
		keyList: make([]string, 0),
	}
}

// TrackKey records a key and its hash, returning errs.ErrDuplicateKey if the
// exact same key string was already tracked.
//
// A hash collision (different key, same hash) is not an error: the flag
// surfaces via HasCollision so callers can fall back to a linear string scan
// instead of trusting the hash index alone.
func (t *Tracker) TrackKey(key string, hash uint64) error {
	if existing, exists := t.keys[hash]; exists {
		if existing == key || slices.Contains(t.keyList, key) {
			return errs.ErrDuplicateKey
		}
		// Different key, same hash: a collision, not a duplicate.
		t.hasCollision = true
	}

	t.keys[hash] = key
	t.keyList = append(t.keyList, key)

	return nil
}

// HasCollision reports whether a hash collision has been observed.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Keys returns the tracked keys in insertion order.
func (t *Tracker) Keys() []string {
	return t.keyList
}

// Count returns the number of tracked keys.
func (t *Tracker) Count() int {
	return len(t.keyList)
}

// Reset clears all tracked keys and the collision flag, preserving allocated
// capacity for reuse.
func (t *Tracker) Reset() {
	for k := range t.keys {
		delete(t.keys, k)
	}
	t.keyList = t.keyList[:0]
	t.hasCollision = false
}
