package twosum

import (
	"fmt"

	"github.com/katalvlaran/twopointer/order"
	"github.com/katalvlaran/twopointer/trace"
)

// TwoSum returns the first pair of positions (in scan order) whose values in
// s sum to target. s must be sorted in non-decreasing order.
func TwoSum[E order.Number](s []E, target E, opts ...Option) (Pair, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Trusted {
		if i := order.FirstDescent(s); i >= 0 {
			return Pair{}, fmt.Errorf("%w: s[%d]=%v follows s[%d]=%v", ErrNotSorted, i, s[i], i-1, s[i-1])
		}
	}
	em := trace.NewEmitter(o.Tracer, OpName)

	left, right := 0, len(s)-1
	for left < right {
		sum, c := order.CompareSum(target, s[left], s[right])
		if em.Enabled() {
			em.Emit(trace.Compare, trace.NoIndex, left, right, s[left], s[right], sum)
		}
		switch {
		case c == 0:
			if em.Enabled() {
				em.Emit(trace.Match, trace.NoIndex, left, right, s[left], s[right], sum)
			}
			return Pair{Left: left, Right: right}, nil
		case c < 0:
			left++
			if em.Enabled() {
				em.Emit(trace.AdvanceLeft, trace.NoIndex, left, right)
			}
		default:
			right--
			if em.Enabled() {
				em.Emit(trace.RetreatRight, trace.NoIndex, left, right)
			}
		}
	}

	return Pair{}, ErrNotFound
}
