package managed

import "errors"

var (
	// ErrBorrowedSlice is returned by Slice.Append on a borrowed slice: a
	// caller-owned region has a fixed length and cannot grow.
	ErrBorrowedSlice = errors.New("managed: borrowed slice cannot grow")
)

// Kind identifies the active variant of a managed value. The zero Kind is
// invalid; a managed value must be built with one of the Borrow*/Own*
// constructors before use.
type Kind uint8

const (
	// KindBorrowed marks a value backed by caller-owned storage, held
	// exclusively for the value's lifetime.
	KindBorrowed Kind = iota + 1
	// KindOwned marks a value backed by heap storage it owns outright.
	KindOwned
)

func (k Kind) String() string {
	switch k {
	case KindBorrowed:
		return "borrowed"
	case KindOwned:
		return "owned"
	default:
		return "invalid"
	}
}
