package managed

// Slice is exclusive access to a sequence, obtained by either borrowing a
// caller-owned region (fixed length) or owning a growable slice.
type Slice[T any] struct {
	kind  Kind
	elems []T
}

// BorrowSlice wraps the caller's region. Its length is fixed: elements may
// be read and written in place, but the slice cannot grow. The caller must
// not touch the region through any other path while the Slice is in use.
func BorrowSlice[T any](elems []T) Slice[T] {
	return Slice[T]{kind: KindBorrowed, elems: elems}
}

// OwnSlice wraps a slice the managed value owns outright; it may grow.
func OwnSlice[T any](elems []T) Slice[T] {
	return Slice[T]{kind: KindOwned, elems: elems}
}

// Kind returns the active variant.
func (s *Slice[T]) Kind() Kind {
	return s.kind
}

// Elems returns the managed elements. For a borrowed slice this aliases
// the caller's region, so in-place element writes are visible to the owner.
func (s *Slice[T]) Elems() []T {
	return s.elems
}

// Len returns the element count.
func (s *Slice[T]) Len() int {
	return len(s.elems)
}

// Append appends elems to an owned slice, growing it as needed. Appending
// to a borrowed slice fails with ErrBorrowedSlice and mutates nothing.
func (s *Slice[T]) Append(elems ...T) error {
	switch s.kind {
	case KindBorrowed:
		return ErrBorrowedSlice
	case KindOwned:
		s.elems = append(s.elems, elems...)
		return nil
	default:
		panic("managed: zero-value Slice has no variant")
	}
}
