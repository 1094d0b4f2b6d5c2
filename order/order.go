// Package order defines the element constraints shared by the two-pointer
// routines and the sortedness checks they use to validate their input.
//
// Every sorted-input routine in this module (twosum, merge, dedup) relies on
// non-decreasing order for correctness. Instead of silently producing a wrong
// answer on unsorted data, each of them calls FirstDescent (or its comparator
// form) before scanning and reports the violating index.
//
// Ordering follows cmp.Compare: a floating-point NaN sorts before every other
// value, which is also what slices.Sort does.
package order

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is the constraint for sequences whose elements are summed.
// It admits every integer and floating-point kind.
type Number interface {
	constraints.Integer | constraints.Float
}

// FirstDescent returns the smallest index i > 0 such that s[i] sorts before
// s[i-1], or -1 if s is in non-decreasing order.
//
// Complexity: O(n) time, O(1) memory.
func FirstDescent[E cmp.Ordered](s []E) int {
	for i := 1; i < len(s); i++ {
		if cmp.Less(s[i], s[i-1]) {
			return i
		}
	}

	return -1
}

// FirstDescentFunc is FirstDescent with a caller-supplied three-way comparator.
// compare must return a negative number when x sorts before y.
func FirstDescentFunc[E any](s []E, compare func(x, y E) int) int {
	for i := 1; i < len(s); i++ {
		if compare(s[i], s[i-1]) < 0 {
			return i
		}
	}

	return -1
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[E cmp.Ordered](s []E) bool {
	return FirstDescent(s) < 0
}
