package dedup

import (
	"errors"

	"github.com/katalvlaran/twopointer/trace"
)

// OpName identifies this routine in trace events.
const OpName = "dedup"

// ErrNotSorted is returned when the input is not in non-decreasing order.
var ErrNotSorted = errors.New("dedup: input is not sorted")

// Option configures Dedup via functional arguments.
type Option func(*Options)

// Options holds the parameters of a Dedup call.
type Options struct {
	// Tracer receives a Compare event per scanned element and a Write event
	// whenever a new distinct value is copied forward.
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

// WithTrustedInput skips the sortedness check. On unsorted input only
// adjacent duplicates are removed.
func WithTrustedInput() Option {
	return func(o *Options) {
		o.Trusted = true
	}
}
