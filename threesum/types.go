package threesum

import (
	"github.com/katalvlaran/twopointer/order"
	"github.com/katalvlaran/twopointer/trace"
)

// OpName identifies this routine in trace events.
const OpName = "threesum"

// Triple holds the values (fixed, s[left], s[right]) of one recorded match.
type Triple[E order.Number] [3]E

// Sum returns the sum of the three values.
func (t Triple[E]) Sum() E {
	return t[0] + t[1] + t[2]
}

// Option configures ThreeSum via functional arguments.
type Option func(*Options)

// Options holds the parameters of a ThreeSum call.
type Options struct {
	// Tracer receives a Fix event per fixed index, a Compare event per
	// computed total, then Match, AdvanceLeft or RetreatRight.
	Tracer trace.Tracer

	// Presort scans a sorted copy of the input instead of the input itself.
	Presort bool
}

// DefaultOptions returns Options for the faithful, unsorted scan with a
// no-op tracer.
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

// WithPresort makes ThreeSum sort a copy of the input before scanning.
func WithPresort() Option {
	return func(o *Options) {
		o.Presort = true
	}
}
