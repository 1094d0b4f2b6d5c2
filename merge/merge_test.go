package merge_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twopointer/merge"
	"github.com/katalvlaran/twopointer/trace"
)

func TestMerge(t *testing.T) {
	testCases := []struct {
		name string
		a, b []int
		want []int
	}{
		{"sample", []int{1, 3, 5}, []int{2, 4, 6}, []int{1, 2, 3, 4, 5, 6}},
		{"both empty", nil, nil, []int{}},
		{"a empty", nil, []int{1, 2}, []int{1, 2}},
		{"b empty", []int{1, 2}, []int{}, []int{1, 2}},
		{"a before b", []int{1, 2}, []int{3, 4}, []int{1, 2, 3, 4}},
		{"b before a", []int{3, 4}, []int{1, 2}, []int{1, 2, 3, 4}},
		{"duplicates across inputs", []int{1, 2, 2}, []int{2, 3}, []int{1, 2, 2, 2, 3}},
		{"uneven lengths", []int{5}, []int{1, 2, 3, 4, 6, 7}, []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := merge.Merge(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMerge_InputsUntouched(t *testing.T) {
	a, b := []int{1, 3, 5}, []int{2, 4, 6}
	out, err := merge.Merge(a, b)
	require.NoError(t, err)

	out[0] = 100
	assert.Equal(t, []int{1, 3, 5}, a)
	assert.Equal(t, []int{2, 4, 6}, b)
}

type item struct {
	key int
	src string
}

// TestMergeFunc_Stable checks that ties keep source order and favor the first input.
func TestMergeFunc_Stable(t *testing.T) {
	a := []item{{1, "a0"}, {2, "a1"}, {2, "a2"}, {4, "a3"}}
	b := []item{{2, "b0"}, {2, "b1"}, {3, "b2"}, {4, "b3"}}
	byKey := func(x, y item) int { return cmp.Compare(x.key, y.key) }

	got, err := merge.MergeFunc(a, b, byKey)
	require.NoError(t, err)

	var src []string
	for _, it := range got {
		src = append(src, it.src)
	}
	assert.Equal(t, []string{"a0", "a1", "a2", "b0", "b1", "b2", "a3", "b3"}, src)
}

func TestMergeFunc_NilCompare(t *testing.T) {
	_, err := merge.MergeFunc([]int{1}, []int{2}, nil)
	assert.ErrorIs(t, err, merge.ErrNilCompare)
}

func TestMerge_NotSorted(t *testing.T) {
	_, err := merge.Merge([]int{2, 1}, []int{3})
	require.ErrorIs(t, err, merge.ErrNotSorted)
	assert.Contains(t, err.Error(), "first input")

	_, err = merge.Merge([]int{1}, []int{3, 4, 0})
	require.ErrorIs(t, err, merge.ErrNotSorted)
	assert.Contains(t, err.Error(), "second input breaks order at index 2")

	got, err := merge.Merge([]int{2, 1}, []int{3}, merge.WithTrustedInput())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, got)
}

// TestMerge_Properties checks sortedness, length, and multiset equality on random inputs.
func TestMerge_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	randSorted := func() []int {
		s := make([]int, rng.Intn(12))
		for i := range s {
			s[i] = rng.Intn(10)
		}
		slices.Sort(s)
		return s
	}

	for iter := 0; iter < 500; iter++ {
		a, b := randSorted(), randSorted()
		got, err := merge.Merge(a, b)
		require.NoError(t, err)

		require.Len(t, got, len(a)+len(b))
		require.True(t, slices.IsSorted(got), "unsorted output %v", got)

		want := append(slices.Clone(a), b...)
		slices.Sort(want)
		require.Equal(t, want, got)
	}
}

func TestMerge_Trace(t *testing.T) {
	rec := &trace.Recorder{}
	_, err := merge.Merge([]int{1, 3, 5}, []int{2, 4, 6}, merge.WithTracer(rec))
	require.NoError(t, err)

	assert.Equal(t, []trace.Action{
		trace.Compare, trace.AdvanceLeft,
		trace.Compare, trace.AdvanceRight,
		trace.Compare, trace.AdvanceLeft,
		trace.Compare, trace.AdvanceRight,
		trace.Compare, trace.AdvanceLeft,
		trace.Drain,
	}, rec.Actions())

	drain := rec.Events[len(rec.Events)-1]
	assert.Equal(t, 3, drain.Left)
	assert.Equal(t, 2, drain.Right)
	assert.Equal(t, []any{1}, drain.Values)

	rec.Reset()
	_, err = merge.Merge([]int{1, 2}, []int{1, 2}, merge.WithTracer(rec))
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Count(trace.AdvanceLeft), "ties favor the first input")
	assert.Equal(t, 1, rec.Count(trace.AdvanceRight))
}
