package palindrome

import "github.com/katalvlaran/twopointer/trace"

// OpName identifies this routine in trace events.
const OpName = "palindrome"

// Option configures a palindrome check via functional arguments.
type Option func(*Options)

// Options holds the parameters of a palindrome check.
type Options struct {
	// Tracer receives one Compare event per inspected pair and a
	// Mismatch event when the scan short-circuits.
	Tracer trace.Tracer
}

// DefaultOptions returns Options with a no-op tracer.
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
