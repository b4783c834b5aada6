package slotmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mkRegion builds a test region from single-letter keys, "_" meaning an
// empty slot. Occupied slots get the key's byte value so that pair
// integrity survives into assertions.
func mkRegion(keys ...string) []Slot[string, int] {
	region := make([]Slot[string, int], len(keys))
	for i, k := range keys {
		if k == "_" {
			continue
		}
		region[i] = NewSlot(k, int(k[0]))
	}
	return region
}

// regionKeys renders a region as "a,b,_,_" for compact comparisons.
func regionKeys(region []Slot[string, int]) string {
	keys := make([]string, len(region))
	for i, s := range region {
		if s.Occupied() {
			keys[i] = s.Key()
		} else {
			keys[i] = "_"
		}
	}
	return strings.Join(keys, ",")
}

// requireInvariant asserts the region ordering invariants: occupied slots
// first, strictly ascending by key, then only empty slots.
func requireInvariant(t *testing.T, region []Slot[string, int]) {
	t.Helper()
	seenEmpty := false
	var last string
	for i, s := range region {
		if !s.Occupied() {
			seenEmpty = true
			continue
		}
		require.False(t, seenEmpty, "occupied slot %d after an empty slot", i)
		if i > 0 {
			require.Less(t, last, s.Key(), "keys not strictly ascending at slot %d", i)
		}
		last = s.Key()
	}
}
