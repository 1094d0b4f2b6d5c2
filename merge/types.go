package merge

import (
	"errors"

	"github.com/katalvlaran/twopointer/trace"
)

// OpName identifies this routine in trace events.
const OpName = "merge"

var (
	// ErrNotSorted is returned when an input is not sorted under the comparator.
	ErrNotSorted = errors.New("merge: input is not sorted")

	// ErrNilCompare is returned when MergeFunc receives a nil comparator.
	ErrNilCompare = errors.New("merge: compare function is nil")
)

// Option configures a merge via functional arguments.
type Option func(*Options)

// Options holds the parameters of a merge.
type Options struct {
	// Tracer receives a Compare event per head-to-head comparison, an
	// AdvanceLeft (took from a) or AdvanceRight (took from b) event after
	// each append, and a Drain event for the final suffix.
	// Left and Right carry the cursors into a and b.
	Tracer trace.Tracer

	// Trusted skips the sortedness check on both inputs.
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

// WithTrustedInput skips the sortedness check. On unsorted input the result
// still contains every element but is not sorted.
func WithTrustedInput() Option {
	return func(o *Options) {
		o.Trusted = true
	}
}
