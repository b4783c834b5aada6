package managed

import (
	"cmp"

	"github.com/google/btree"
)

// treeDegree is the B-tree branching factor for owned maps.
const treeDegree = 16

type treeEntry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// TreeMap is the heap-backed ordered map used by the owned Map variant: a
// thin adapter giving github.com/google/btree the same seven operations as
// a bounded slot region, with unbounded capacity.
//
// Entries are stored behind pointers so GetMut can hand out a *V aiming at
// the live entry.
type TreeMap[K cmp.Ordered, V any] struct {
	tr *btree.BTreeG[*treeEntry[K, V]]
}

// NewTreeMap returns an empty heap-backed ordered map.
func NewTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	less := func(a, b *treeEntry[K, V]) bool {
		return a.key < b.key
	}
	return &TreeMap[K, V]{tr: btree.NewG(treeDegree, less)}
}

// Get returns the value stored under key.
func (t *TreeMap[K, V]) Get(key K) (V, bool) {
	e, ok := t.tr.Get(&treeEntry[K, V]{key: key})
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetMut returns a pointer to the value stored under key, or nil if key is
// absent. The pointer is invalidated by a later Remove or Clear of the key.
func (t *TreeMap[K, V]) GetMut(key K) *V {
	e, ok := t.tr.Get(&treeEntry[K, V]{key: key})
	if !ok {
		return nil
	}
	return &e.value
}

// Insert stores value under key, returning the previous value if the key
// was already present.
func (t *TreeMap[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	old, hadOld := t.tr.ReplaceOrInsert(&treeEntry[K, V]{key: key, value: value})
	if !hadOld {
		var zero V
		return zero, false
	}
	return old.value, true
}

// Remove deletes key from the map, returning the removed value. Removing
// an absent key is a no-op.
func (t *TreeMap[K, V]) Remove(key K) (V, bool) {
	e, ok := t.tr.Delete(&treeEntry[K, V]{key: key})
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Clear empties the map.
func (t *TreeMap[K, V]) Clear() {
	t.tr.Clear(false)
}

// Len returns the entry count.
func (t *TreeMap[K, V]) Len() int {
	return t.tr.Len()
}

// IsEmpty reports whether the map has no entries.
func (t *TreeMap[K, V]) IsEmpty() bool {
	return t.tr.Len() == 0
}
