package merge_test

import (
	"testing"

	"github.com/katalvlaran/twopointer/merge"
)

// BenchmarkMerge_Interleaved merges evens with odds, alternating at every step.
func BenchmarkMerge_Interleaved(b *testing.B) {
	const n = 5_000
	evens, odds := make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		evens[i], odds[i] = 2*i, 2*i+1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := merge.Merge(evens, odds); err != nil {
			b.Fatal(err)
		}
	}
}
