package threesum

import (
	"slices"

	"github.com/katalvlaran/twopointer/order"
	"github.com/katalvlaran/twopointer/trace"
)

// ThreeSum returns every triple recorded by the fixed-index two-pointer scan
// of s for target. The result is never nil. s is never modified.
func ThreeSum[E order.Number](s []E, target E, opts ...Option) []Triple[E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Presort {
		s = slices.Clone(s)
		slices.Sort(s)
	}
	em := trace.NewEmitter(o.Tracer, OpName)

	res := make([]Triple[E], 0)
	n := len(s)
	for i := 0; i < n-2; i++ {
		fixed := s[i]
		left, right := i+1, n-1
		if em.Enabled() {
			em.Emit(trace.Fix, i, left, right, fixed)
		}

		for left < right {
			total, c := order.CompareSum(target, fixed, s[left], s[right])
			if em.Enabled() {
				em.Emit(trace.Compare, i, left, right, fixed, s[left], s[right], total)
			}
			switch {
			case c == 0:
				res = append(res, Triple[E]{fixed, s[left], s[right]})
				if em.Enabled() {
					em.Emit(trace.Match, i, left, right, fixed, s[left], s[right], total)
				}
				left++
				right--
			case c < 0:
				left++
				if em.Enabled() {
					em.Emit(trace.AdvanceLeft, i, left, right)
				}
			default:
				right--
				if em.Enabled() {
					em.Emit(trace.RetreatRight, i, left, right)
				}
			}
		}
	}

	return res
}
