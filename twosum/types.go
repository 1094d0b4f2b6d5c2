package twosum

import (
	"errors"

	"github.com/katalvlaran/twopointer/trace"
)

// OpName identifies this routine in trace events.
const OpName = "twosum"

var (
	// ErrNotFound is returned when no pair of positions sums to the target.
	ErrNotFound = errors.New("twosum: no pair sums to target")

	// ErrNotSorted is returned when the input is not in non-decreasing order.
	ErrNotSorted = errors.New("twosum: input is not sorted")
)

// Pair holds two positions into the input, Left < Right.
type Pair struct {
	Left  int
	Right int
}

// Option configures TwoSum via functional arguments.
type Option func(*Options)

// Options holds the parameters of a TwoSum call.
type Options struct {
	// Tracer receives a Compare event per computed sum, then either Match,
	// AdvanceLeft or RetreatRight.
	Tracer trace.Tracer

	// Trusted skips the sortedness check.
	Trusted bool
}

// DefaultOptions returns Options with a no-op tracer and input validation on.
func DefaultOptions() Options {
	return Options{Tracer: trace.Nop}
}

// WithTracer installs t as the step observer. A nil t is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithTrustedInput skips the O(n) sortedness check. On unsorted input the
// result is then unspecified: a valid pair may be missed.
func WithTrustedInput() Option {
	return func(o *Options) {
		o.Trusted = true
	}
}
