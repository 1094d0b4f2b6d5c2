package merge

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/twopointer/order"
	"github.com/katalvlaran/twopointer/trace"
)

// Merge returns the stable merge of the sorted sequences a and b under the
// natural order of E.
func Merge[E cmp.Ordered](a, b []E, opts ...Option) ([]E, error) {
	return MergeFunc(a, b, cmp.Compare[E], opts...)
}

// MergeFunc returns the stable merge of a and b, both sorted under compare.
// compare(x, y) must be negative when x sorts before y, zero when they tie.
func MergeFunc[E any](a, b []E, compare func(x, y E) int, opts ...Option) ([]E, error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Trusted {
		if i := order.FirstDescentFunc(a, compare); i >= 0 {
			return nil, fmt.Errorf("%w: first input breaks order at index %d", ErrNotSorted, i)
		}
		if j := order.FirstDescentFunc(b, compare); j >= 0 {
			return nil, fmt.Errorf("%w: second input breaks order at index %d", ErrNotSorted, j)
		}
	}
	em := trace.NewEmitter(o.Tracer, OpName)

	out := make([]E, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if em.Enabled() {
			em.Emit(trace.Compare, trace.NoIndex, i, j, a[i], b[j])
		}
		if compare(b[j], a[i]) < 0 {
			out = append(out, b[j])
			j++
			if em.Enabled() {
				em.Emit(trace.AdvanceRight, trace.NoIndex, i, j)
			}
			continue
		}
		out = append(out, a[i])
		i++
		if em.Enabled() {
			em.Emit(trace.AdvanceLeft, trace.NoIndex, i, j)
		}
	}

	// at most one of the suffixes is non-empty
	if em.Enabled() && (i < len(a) || j < len(b)) {
		em.Emit(trace.Drain, trace.NoIndex, i, j, len(a)-i+len(b)-j)
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out, nil
}
