package value

import (
	"fmt"

	"github.com/mintpond/bos/errs"
	"github.com/mintpond/bos/internal/collision"
	"github.com/mintpond/bos/internal/hash"
)

// entry is a single key/value pair stored in an Object, in insertion order.
type entry struct {
	key string
	val Value
}

// Object is an insertion-ordered mapping from string keys to Values. Set
// does not reject the empty key.
//
// Duplicate-key detection on Set uses the teacher's xxHash64-based O(1)
// lookup design (internal/hash, internal/collision), adapted from metric-ID
// collision tracking to object-key collision tracking: each Set hashes the
// key and checks the tracker before doing any string comparison, falling
// back to a linear scan only once a hash collision has actually been
// observed for this object.
type Object struct {
	entries []entry
	index   map[uint64]int // hash -> index into entries, valid only while no collision has been seen
	tracker *collision.Tracker
}

func newObject() *Object {
	return &Object{
		index:   make(map[uint64]int),
		tracker: collision.NewTracker(),
	}
}

// Set inserts key/val into the object, preserving insertion order.
//
// Returns errs.ErrDuplicateKey if key is already present. Returns
// errs.ErrKeyTooLong if the key's length exceeds the 255-byte wire limit
// (§4.2); Set enforces this at construction time rather than leaving it to
// the encoder, since an over-long key can never be serialized regardless
// of which encoder option is in effect.
func (o *Object) Set(key string, val Value) error {
	if len(key) > 255 {
		return fmt.Errorf("object set %q: %w", key, errs.ErrKeyTooLong)
	}

	h := hash.ID(key)
	if err := o.tracker.TrackKey(key, h); err != nil {
		return fmt.Errorf("object set %q: %w", key, err)
	}

	if o.tracker.HasCollision() {
		// A hash collision has been observed somewhere in this object;
		// stop maintaining the hash index (Get falls back to a linear scan
		// by key) so a colliding hash never overwrites the wrong entry's
		// index.
		o.entries = append(o.entries, entry{key: key, val: val})
		return nil
	}

	o.index[h] = len(o.entries)
	o.entries = append(o.entries, entry{key: key, val: val})

	return nil
}

// Get looks up key, returning its Value and true if present.
func (o *Object) Get(key string) (Value, bool) {
	h := hash.ID(key)

	if !o.tracker.HasCollision() {
		if i, ok := o.index[h]; ok && o.entries[i].key == key {
			return o.entries[i].val, true
		}
		return Value{}, false
	}

	for _, e := range o.entries {
		if e.key == key {
			return e.val, true
		}
	}

	return Value{}, false
}

// Len returns the number of entries in the object.
func (o *Object) Len() int {
	return len(o.entries)
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	return o.tracker.Keys()
}

// Entries iterates the object's key/value pairs in insertion order,
// calling fn for each. Iteration stops early if fn returns false.
func (o *Object) Entries(fn func(key string, val Value) bool) {
	for _, e := range o.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}
