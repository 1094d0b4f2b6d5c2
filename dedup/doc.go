// Package dedup collapses runs of equal values in a sorted sequence, in place,
// with a write pointer and a scan pointer.
//
// Algorithm
//
//  1. len(s) ≤ 1 → return s unchanged.
//  2. left = 0 (last written distinct value), right = 1 (scan).
//  3. For right in 1..len(s)-1:
//     s[right] != s[left] → left++, s[left] = s[right]
//  4. Return s[:left+1].
//
// Ownership
//
//	Dedup mutates the caller's buffer. The returned slice is a prefix of s
//	that shares its backing array; its length is the number of distinct
//	values. Elements of s past that length hold stale values. Clone s first
//	(slices.Clone) when the original contents must survive.
//
// Precondition
//
//	Only adjacent duplicates are collapsed, so s must be sorted (any order in
//	which equal values are contiguous works in principle, but only
//	non-decreasing order is validated). The check runs before the first write,
//	so a rejected buffer is left untouched. WithTrustedInput skips it.
//
// Errors
//
//   - ErrNotSorted if s is not in non-decreasing order (unless trusted).
//
// Floating-point NaN never compares equal to itself, so repeated NaNs are kept.
//
// Complexity
//
//   - Time:   O(n)
//   - Memory: O(1)
package dedup
