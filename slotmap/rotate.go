package slotmap

import (
	"cmp"
	"slices"
)

// rotateLeft cyclically shifts slots left by n positions, in place.
//
// Postcondition: the slot previously at index i is at index
// (i - n + len) % len; the relative order of the slots is otherwise
// preserved. n is reduced modulo len(slots), so rotating by len (or by 0,
// or rotating an empty range) is a no-op.
//
// Rotating left by len-1 is a right rotation by one: it opens a gap at the
// front of the range by wrapping the last slot around to index 0.
func rotateLeft[K cmp.Ordered, V any](slots []Slot[K, V], n int) {
	if len(slots) == 0 {
		return
	}
	n %= len(slots)
	if n == 0 {
		return
	}
	slices.Reverse(slots[:n])
	slices.Reverse(slots[n:])
	slices.Reverse(slots)
}
