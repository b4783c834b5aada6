package managed

import (
	"cmp"

	"github.com/forestrie/go-managed/slotmap"
)

// Map is exclusive access to an ordered map, backed either by a bounded
// caller-owned slot region or by an owned heap B-tree. The variant is
// fixed at construction; every operation dispatches on it.
//
// The borrowed variant never allocates. Its one failure mode is inserting
// a new key into a full region, reported as slotmap.ErrFull; the owned
// variant's Insert never fails.
type Map[K cmp.Ordered, V any] struct {
	kind  Kind
	slots *slotmap.Map[K, V]
	tree  *TreeMap[K, V]
}

// BorrowMap builds a bounded map over the caller's slot region. Capacity
// is len(region) and never changes. A zeroed region is an empty map; a
// pre-seeded region must satisfy the slotmap ordering invariants. The
// caller must not touch the region through any other path while the Map is
// in use.
func BorrowMap[K cmp.Ordered, V any](region []slotmap.Slot[K, V]) Map[K, V] {
	return Map[K, V]{kind: KindBorrowed, slots: slotmap.New(region)}
}

// OwnMap builds a map around a heap-backed TreeMap it owns outright.
func OwnMap[K cmp.Ordered, V any](tree *TreeMap[K, V]) Map[K, V] {
	return Map[K, V]{kind: KindOwned, tree: tree}
}

// Kind returns the active variant.
func (m *Map[K, V]) Kind() Kind {
	return m.kind
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	switch m.kind {
	case KindBorrowed:
		return m.slots.Get(key)
	case KindOwned:
		return m.tree.Get(key)
	default:
		panic("managed: zero-value Map has no variant")
	}
}

// GetMut returns a pointer to the value stored under key, or nil if key is
// absent. The pointer aims into the active backing store and is
// invalidated by a later mutation of the map.
func (m *Map[K, V]) GetMut(key K) *V {
	switch m.kind {
	case KindBorrowed:
		return m.slots.GetMut(key)
	case KindOwned:
		return m.tree.GetMut(key)
	default:
		panic("managed: zero-value Map has no variant")
	}
}

// Insert stores value under key, returning the previous value if the key
// was already present. On a borrowed map, inserting a new key when every
// slot is occupied fails with slotmap.ErrFull and mutates nothing.
func (m *Map[K, V]) Insert(key K, value V) (prev V, replaced bool, err error) {
	switch m.kind {
	case KindBorrowed:
		return m.slots.Insert(key, value)
	case KindOwned:
		prev, replaced = m.tree.Insert(key, value)
		return prev, replaced, nil
	default:
		panic("managed: zero-value Map has no variant")
	}
}

// Remove deletes key from the map, returning the removed value. Removing
// an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	switch m.kind {
	case KindBorrowed:
		return m.slots.Remove(key)
	case KindOwned:
		return m.tree.Remove(key)
	default:
		panic("managed: zero-value Map has no variant")
	}
}

// Clear empties the map. The borrowed variant keeps its region and
// capacity.
func (m *Map[K, V]) Clear() {
	switch m.kind {
	case KindBorrowed:
		m.slots.Clear()
	case KindOwned:
		m.tree.Clear()
	default:
		panic("managed: zero-value Map has no variant")
	}
}

// Len returns the entry count.
func (m *Map[K, V]) Len() int {
	switch m.kind {
	case KindBorrowed:
		return m.slots.Len()
	case KindOwned:
		return m.tree.Len()
	default:
		panic("managed: zero-value Map has no variant")
	}
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	switch m.kind {
	case KindBorrowed:
		return m.slots.IsEmpty()
	case KindOwned:
		return m.tree.IsEmpty()
	default:
		panic("managed: zero-value Map has no variant")
	}
}
