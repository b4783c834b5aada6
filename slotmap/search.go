package slotmap

import (
	"cmp"
	"slices"
)

// compareSlot orders a slot against a query key with empty slots sorting
// last: an occupied slot compares by its key under the natural order, and
// an empty slot compares greater than every key. Under the region ordering
// invariant this makes the whole region sorted with respect to any query,
// trailing empties included, so binary search stays sound.
func compareSlot[K cmp.Ordered, V any](s Slot[K, V], key K) int {
	if !s.occupied {
		return 1
	}
	return cmp.Compare(s.key, key)
}

// search binary-searches slots for key. It returns the index of a matching
// occupied slot and true, or the index at which key would be inserted to
// keep the region ordered and false.
func search[K cmp.Ordered, V any](slots []Slot[K, V], key K) (int, bool) {
	return slices.BinarySearchFunc(slots, key, compareSlot[K, V])
}
