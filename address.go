package procmock

import (
	"strconv"
	"strings"
)

// Address names a procedure as an ordered sequence of segments, for example
// Address{"fs", "read"}. Two addresses are equal only when their segments
// match pairwise in the same order.
type Address []string

// Addr is shorthand for building an Address from segment literals.
func Addr(segments ...string) Address {
	return Address(segments)
}

// Equal reports whether both addresses contain the same segments in the
// same order.
func (a Address) Equal(other Address) bool {
	if len(a) != len(other) {
		return false
	}
	for i, seg := range a {
		if other[i] != seg {
			return false
		}
	}
	return true
}

// Key returns a registry key for the address. Each segment is prefixed with
// its length ("2:fs/4:read"), so keys parse unambiguously left to right and
// distinct segment sequences can never collide, even when a segment contains
// the separator itself.
func (a Address) Key() string {
	var b strings.Builder
	for i, seg := range a {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Itoa(len(seg)))
		b.WriteByte(':')
		b.WriteString(seg)
	}
	return b.String()
}

// String returns a human-readable form of the address. It is for display
// and log output only; use Key for registry lookups.
func (a Address) String() string {
	return strings.Join(a, "/")
}

// clone returns an independent copy so callers cannot mutate stored
// addresses through a retained slice.
func (a Address) clone() Address {
	if a == nil {
		return nil
	}
	return append(Address(nil), a...)
}
