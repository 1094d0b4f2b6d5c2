package dedup

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/twopointer/order"
	"github.com/katalvlaran/twopointer/trace"
)

// Dedup removes consecutive duplicates from the sorted sequence s in place
// and returns the deduplicated prefix of s.
func Dedup[E cmp.Ordered](s []E, opts ...Option) ([]E, error) {
	if len(s) <= 1 {
		return s, nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Trusted {
		if i := order.FirstDescent(s); i >= 0 {
			return nil, fmt.Errorf("%w: s[%d]=%v follows s[%d]=%v", ErrNotSorted, i, s[i], i-1, s[i-1])
		}
	}
	em := trace.NewEmitter(o.Tracer, OpName)

	left := 0
	for right := 1; right < len(s); right++ {
		if em.Enabled() {
			em.Emit(trace.Compare, trace.NoIndex, left, right, s[left], s[right])
		}
		if s[right] != s[left] {
			left++
			s[left] = s[right]
			if em.Enabled() {
				em.Emit(trace.Write, trace.NoIndex, left, right, s[left])
			}
		}
	}

	return s[:left+1], nil
}
