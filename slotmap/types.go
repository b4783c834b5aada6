package slotmap

import (
	"cmp"
	"errors"
)

var (
	// ErrFull is returned by Insert when the region has no empty slot for a
	// new key. The region is left untouched and the caller keeps its key and
	// value; only the caller can make room, by removing an entry first.
	ErrFull = errors.New("slotmap: region full")
)

// Slot is one region position: either empty or holding one key/value pair.
// The zero value is an empty slot, so a zeroed region is an empty map.
type Slot[K cmp.Ordered, V any] struct {
	key      K
	value    V
	occupied bool
}

// NewSlot returns an occupied slot holding (key, value). It is intended for
// seeding regions in tests and for callers that prepare a region by hand;
// such a region must still satisfy the package ordering invariants before
// it is handed to New.
func NewSlot[K cmp.Ordered, V any](key K, value V) Slot[K, V] {
	return Slot[K, V]{key: key, value: value, occupied: true}
}

// Occupied reports whether the slot holds a pair.
func (s Slot[K, V]) Occupied() bool {
	return s.occupied
}

// Key returns the slot's key. Meaningless when the slot is empty.
func (s Slot[K, V]) Key() K {
	return s.key
}

// Value returns the slot's value. Meaningless when the slot is empty.
func (s Slot[K, V]) Value() V {
	return s.value
}
