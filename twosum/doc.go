// Package twosum finds a pair of positions in a sorted sequence whose values
// add up to a target, using two pointers that converge from both ends.
//
// Algorithm
//
//  1. left = 0, right = len(s)-1.
//  2. While left < right:
//     sum = s[left] + s[right]
//     sum == target → return (left, right)
//     sum <  target → left++   (the only way to grow the sum)
//     sum >  target → right--  (the only way to shrink it)
//  3. Report ErrNotFound.
//
// Sortedness is what makes the pruning safe: advancing left discards pairs
// (left, k) with k ≤ right, all of which sum to at most s[left]+s[right] <
// target. The input is therefore checked for non-decreasing order before the
// scan; callers that already guarantee it can skip the O(n) check with
// WithTrustedInput.
//
// Usage
//
//	p, err := twosum.TwoSum([]int{1, 2, 3, 4, 5}, 9)
//	// p == twosum.Pair{Left: 3, Right: 4}
//
//	_, err = twosum.TwoSum([]int{1, 2}, 100)
//	// errors.Is(err, twosum.ErrNotFound)
//
// Errors
//
//   - ErrNotFound  if no two distinct positions sum to target.
//   - ErrNotSorted if s is not in non-decreasing order (unless trusted).
//
// Overflow
//
//	Sums are compared with order.CompareSum. For integer kinds a sum that
//	overflows E still compares as larger (or smaller) than any target, so
//	[]int8{1, 120, 127} with target 121 finds (0, 1) instead of taking the
//	wrapped 1+127 for a small value.
//
// Complexity
//
//   - Time:   O(n)
//   - Memory: O(1)
package twosum
