package slotmap

import (
	"cmp"
)

// Map is a bounded ordered map over a caller-owned slot region.
//
// A Map holds no state of its own beyond the region reference: size and
// occupancy are derived by scanning, and the region reverts to the caller
// the moment the Map is no longer used. The Map must have exclusive access
// to the region for its whole lifetime.
type Map[K cmp.Ordered, V any] struct {
	slots []Slot[K, V]
}

// New borrows region as the backing storage of a bounded map. Capacity is
// len(region) and never changes.
//
// The region must satisfy the package ordering invariants. A zeroed region
// (all slots empty) always does.
func New[K cmp.Ordered, V any](region []Slot[K, V]) *Map[K, V] {
	return &Map[K, V]{slots: region}
}

// Cap returns the fixed capacity of the backing region.
func (m *Map[K, V]) Cap() int {
	return len(m.slots)
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, found := search(m.slots, key)
	if !found {
		var zero V
		return zero, false
	}
	return m.slots[i].value, true
}

// GetMut returns a pointer to the value stored under key, or nil if key is
// absent. The pointer aims into the region; it is invalidated by the next
// Insert, Remove or Clear.
func (m *Map[K, V]) GetMut(key K) *V {
	i, found := search(m.slots, key)
	if !found {
		return nil
	}
	return &m.slots[i].value
}

// Insert stores value under key.
//
// If key is already present its value is replaced in place and the previous
// value is returned with replaced true. Otherwise the new pair is inserted
// at its ordered position, shifting the following entries right by one into
// the nearest empty slot.
//
// Inserting a new key into a full region fails with ErrFull and mutates
// nothing; the caller keeps its key and value. This is the only failure
// mode.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	i, found := search(m.slots, key)
	if found {
		s := &m.slots[i]
		prev = s.value
		s.value = value
		return prev, true, nil
	}

	// The ordering invariant puts every occupied slot before every empty
	// one, so an occupied last slot means there is no empty slot anywhere in
	// the region. Checking it is a complete fullness test; no scan needed.
	if len(m.slots) == 0 || m.slots[len(m.slots)-1].occupied {
		return prev, false, ErrFull
	}

	// Rotating the suffix left by len-1 shifts slots[i:] right by one. The
	// slot wrapping around to index i is the last slot, known empty, so no
	// occupied slot is overwritten and the gap opens exactly at i.
	suffix := m.slots[i:]
	rotateLeft(suffix, len(suffix)-1)
	if suffix[0].occupied {
		panic("slotmap: insertion gap occupied after rotation")
	}
	suffix[0] = NewSlot(key, value)
	return prev, false, nil
}

// Remove deletes key from the map, returning the removed value. Removing an
// absent key is a no-op.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	i, found := search(m.slots, key)
	if !found {
		var zero V
		return zero, false
	}
	s := &m.slots[i]
	if !s.occupied {
		panic("slotmap: matched slot empty before removal")
	}
	removed := s.value
	*s = Slot[K, V]{}

	// Rotating left by one carries the vacated slot to the end of the
	// region, closing the gap while keeping the surviving entries ordered.
	rotateLeft(m.slots[i:], 1)
	return removed, true
}

// Clear empties every slot.
func (m *Map[K, V]) Clear() {
	clear(m.slots)
}

// Len counts the occupied slots. The ordering invariant lets the scan stop
// at the first empty slot.
func (m *Map[K, V]) Len() int {
	n := 0
	for i := range m.slots {
		if !m.slots[i].occupied {
			break
		}
		n++
	}
	return n
}

// IsEmpty reports whether no slot is occupied.
func (m *Map[K, V]) IsEmpty() bool {
	for i := range m.slots {
		if m.slots[i].occupied {
			return false
		}
	}
	return true
}
