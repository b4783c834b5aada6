package managed

// Managed is exclusive access to a single object, obtained by either
// borrowing the caller's object or owning one outright. Both variants are
// reached through Get; call sites do not care which is active.
type Managed[T any] struct {
	kind  Kind
	ref   *T
	owned T
}

// Borrow wraps the caller's object. The caller must not touch *obj through
// any other path while the Managed value is in use.
func Borrow[T any](obj *T) Managed[T] {
	return Managed[T]{kind: KindBorrowed, ref: obj}
}

// Own wraps an object the managed value owns outright.
func Own[T any](obj T) Managed[T] {
	return Managed[T]{kind: KindOwned, owned: obj}
}

// Kind returns the active variant.
func (m *Managed[T]) Kind() Kind {
	return m.kind
}

// Get returns the managed object. For a borrowed value this is the
// caller's pointer; for an owned value it aims at storage inside m, so m
// must not be copied while the pointer is live.
func (m *Managed[T]) Get() *T {
	switch m.kind {
	case KindBorrowed:
		return m.ref
	case KindOwned:
		return &m.owned
	default:
		panic("managed: zero-value Managed has no variant")
	}
}
