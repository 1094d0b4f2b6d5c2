// Package threesum finds combinations of three positions whose values sum to
// a target by fixing one index and running a two-pointer scan over the rest.
//
// Algorithm
//
//  1. For i in 0..len(s)-3:
//     fixed = s[i], left = i+1, right = len(s)-1
//  2. While left < right:
//     total = fixed + s[left] + s[right]
//     total == target → record (fixed, s[left], s[right]); left++, right--
//     total <  target → left++
//     total >  target → right--
//  3. Return every recorded triple, in discovery order.
//
// Faithful mode (default)
//
//	The scan runs over s exactly as given. The pointer pruning is only sound
//	when each remainder s[i+1:] is sorted, so on unsorted input some triples
//	may be missed. Duplicate values are not skipped either: the same value
//	combination can be recorded more than once, from different positions.
//	For [1, 1, 1, 1] and target 3 the result is [[1 1 1] [1 1 1]].
//
// Presorted mode
//
//	WithPresort sorts a copy of s before scanning (the caller's slice is not
//	touched). Every remainder is then sorted, so every value combination that
//	sums to target is found at least once.
//
// Overflow
//
//	The three-value total is compared with order.CompareSum, which carries
//	integer overflow between the two additions. A total that leaves E's
//	range never matches and steers the pointers the right way.
//
// Usage
//
//	got := threesum.ThreeSum([]int{1, 2, 3, 4, 6}, 10)
//	// got == [[1 3 6]]
//
//	got = threesum.ThreeSum([]int{6, 1, 4, 3, 2}, 10, threesum.WithPresort())
//
// Complexity
//
//   - Time:   O(n²), plus O(n log n) with WithPresort.
//   - Memory: O(k) for k recorded triples, plus O(n) with WithPresort.
package threesum
