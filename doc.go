package managed

/*

# Managed containers: one value, borrowed or owned backing

This package gives call sites a single value that is backed either by a
fixed-capacity region the caller owns, or by a growable container on the
heap, and lets generic code operate on both uniformly. Code written
against a managed value runs unchanged on allocation-free targets
(preallocated regions) and on hosted targets (heap containers); the
borrowed path never allocates.

Three managed values are provided:

  - Managed[T]   one object, borrowed (*T) or owned (T)
  - Slice[T]     a sequence, borrowed (fixed) or owned (growable)
  - Map[K, V]    an ordered map, borrowed (a bounded slot region, see
    package slotmap) or owned (a B-tree)

Each is a two-variant tagged value. The variant is chosen at construction
with the Borrow* and Own* constructors and never changes; every operation
dispatches on the tag. A third backing strategy means a third tag and one
more case per operation, not a new type hierarchy.

The borrowed variants hold exclusive access to the caller's storage: the
caller must not touch the storage through any other path while the managed
value is in use, and gets it back, final contents included, when the value
is dropped. Nothing here locks or copies.

For Map, the borrowed variant is the interesting one: a key-sorted slot
region with O(log n) lookup and O(n) in-place insert/remove, implemented
by package slotmap. The owned variant delegates to github.com/google/btree
and exists so hosted callers are not capacity-bound. Insert on a borrowed
map is the only operation in the package that can fail (slotmap.ErrFull).

*/
