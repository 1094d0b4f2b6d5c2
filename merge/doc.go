// Package merge combines two individually sorted sequences into one sorted
// sequence with a cursor per input.
//
// Algorithm
//
//  1. i = 0 (cursor into a), j = 0 (cursor into b), out = empty.
//  2. While i < len(a) and j < len(b):
//     b[j] sorts before a[i] → append b[j], j++
//     otherwise              → append a[i], i++   (ties go to a)
//  3. Append the unconsumed suffix of whichever input remains, in one step.
//
// The merge is stable: equal elements keep their relative order within each
// input, and on a tie the element from a comes first. len(out) is always
// len(a)+len(b).
//
// Usage
//
//	out, err := merge.Merge([]int{1, 3, 5}, []int{2, 4, 6})
//	// out == [1 2 3 4 5 6]
//
//	type job struct{ prio int; name string }
//	out, err := merge.MergeFunc(x, y, func(p, q job) int { return cmp.Compare(p.prio, q.prio) })
//
// Ownership
//
//	The result is freshly allocated; a and b are never modified.
//
// Errors
//
//   - ErrNotSorted  if a or b is not sorted under the comparator (unless trusted).
//   - ErrNilCompare if MergeFunc is given a nil comparator.
//
// Complexity
//
//   - Time:   O(len(a)+len(b))
//   - Memory: O(len(a)+len(b)) for the result.
package merge
