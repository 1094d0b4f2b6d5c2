// Package twopointer is a small library of two-pointer scans over in-memory
// sequences: the textbook technique of walking two indices toward each other
// (or in tandem) to prune a search in linear time.
//
// 🚀 What is inside?
//
//	Five independent routines, each in its own package:
//		• palindrome: does a sequence read the same both ways?
//		• twosum    : two positions of a sorted sequence summing to a target
//		• merge     : stable merge of two sorted sequences
//		• dedup     : in-place removal of repeated values from a sorted sequence
//		• threesum  : fixed index + two-pointer search for triples
//
//	Two supporting packages:
//		• trace: optional step observer (Recorder, zap logger, custom Func)
//		• order: Number constraint and sortedness checks
//
// ✨ Conventions shared by every routine
//
//   - Generic over the element type; no reflection, no interface boxing on the hot path.
//   - Functional options: WithTracer everywhere, WithTrustedInput on sorted-input
//     routines, WithPresort on threesum.
//   - Sorted-input preconditions are validated (O(n)) and reported as
//     package-level sentinel errors (ErrNotSorted, ErrNotFound) for errors.Is.
//   - Silent by default: the narration of each pointer move goes to a
//     trace.Tracer only when one is installed.
//
// Quick ASCII example (twosum on [1 2 3 4 5], target 9):
//
//	 L               R
//	[1   2   3   4   5]   1+5=6 < 9  → L++
//	     L           R
//	[1   2   3   4   5]   2+5=7 < 9  → L++
//	         L       R
//	[1   2   3   4   5]   3+5=8 < 9  → L++
//	             L   R
//	[1   2   3   4   5]   4+5=9      → (3, 4)
//
// The command in cmd/twoptr runs every routine from the shell:
//
//	go run github.com/katalvlaran/twopointer/cmd/twoptr demo
package twopointer
