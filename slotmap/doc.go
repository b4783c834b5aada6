package slotmap

/*

# Bounded ordered map primitives (in-place, allocation-free)

This package provides a key-sorted map over a fixed-length, caller-owned
region of slots. It is intended for targets where a heap is unavailable or
unwanted: none of its operations allocate, under any input.

The style is deliberate:

- small, composable functions
- explicit in-place mutation of caller storage
- index arithmetic on slices
- a burden of knowledge on the caller for hot paths

## The region

The caller allocates (statically, on the stack, or however it likes) a
`[]Slot[K, V]` and hands it to New. The zero value of Slot is an empty
slot, so a freshly zeroed region is an empty map. Capacity is the region
length and never changes.

	+----------+----------+----------+------+------+
	| ("a", 1) | ("b", 2) | ("c", 3) | ____ | ____ |
	+----------+----------+----------+------+------+
	  occupied, strictly ascending     empty slots

## Core invariants

1. read left-to-right, all occupied slots come first, strictly increasing
   by key, followed by all empty slots
2. no key appears in more than one occupied slot

Every operation assumes (1) on entry and re-establishes it before
returning. Searches rely on an "absence sorts last" comparator: an empty
slot compares greater than any key, so binary search remains sound over a
region with trailing empties.

Insertion and removal restore (1) by rotating the minimal sub-range of the
region by the minimal amount, moving the gap without disturbing the
relative order of the surviving entries.

## Exclusive access

A Map borrows its region exclusively. The caller must not read or write
the region through any other path while the Map is in use; the package has
no locks and no defence against aliased mutation.

*/
