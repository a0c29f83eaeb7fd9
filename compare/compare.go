// Package compare provides the default comparison functions used by the
// ordering and deduplicating operations of the containers.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types. It returns -1 when a
// is less than b, +1 when a is greater than b, and 0 otherwise, which makes it
// suitable as the cmp argument of the containers' ordering operations.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Equal is an equality function for comparable types.
func Equal[T comparable](a, b T) bool { return a == b }
