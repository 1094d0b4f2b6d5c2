package trace

import "fmt"

// Action names what a routine did at one step of a scan.
type Action uint8

const (
	// Compare: the elements under the pointers were inspected.
	Compare Action = iota
	// Match: a result was recorded (pair found, triple recorded).
	Match
	// Mismatch: the scan stopped early because two elements differ.
	Mismatch
	// AdvanceLeft: the left pointer moved one position forward.
	AdvanceLeft
	// AdvanceRight: the right pointer moved one position forward.
	// Used by merge, where both cursors only move forward.
	AdvanceRight
	// RetreatRight: the right pointer moved one position backward.
	RetreatRight
	// Write: an element was copied into the slot under the left pointer.
	Write
	// Drain: the remaining tail of an input was appended in one step.
	Drain
	// Fix: a new fixed index was chosen for a nested scan.
	Fix
)

var actionNames = [...]string{
	Compare:      "compare",
	Match:        "match",
	Mismatch:     "mismatch",
	AdvanceLeft:  "advance-left",
	AdvanceRight: "advance-right",
	RetreatRight: "retreat-right",
	Write:        "write",
	Drain:        "drain",
	Fix:          "fix",
}

// String returns the lower-case name of a.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}

	return fmt.Sprintf("action(%d)", uint8(a))
}

// NoIndex marks an Event field that does not apply to the step.
const NoIndex = -1

// Event is one step of a two-pointer scan.
//
// Left and Right are the pointer positions after the step for movement
// actions, and the inspected positions otherwise. Fixed is the fixed index of
// a nested scan, or NoIndex. Values holds the elements involved, and for sum
// routines the computed sum as the last entry.
type Event struct {
	Op     string
	Step   int
	Action Action
	Fixed  int
	Left   int
	Right  int
	Values []any
}

// String renders e on one line.
func (e Event) String() string {
	if e.Fixed != NoIndex {
		return fmt.Sprintf("%s#%d %s fixed=%d left=%d right=%d %v",
			e.Op, e.Step, e.Action, e.Fixed, e.Left, e.Right, e.Values)
	}

	return fmt.Sprintf("%s#%d %s left=%d right=%d %v", e.Op, e.Step, e.Action, e.Left, e.Right, e.Values)
}

// Tracer observes the steps of a routine. Implementations must not retain
// or modify the Values slice after Trace returns unless they own a copy;
// Recorder stores it as-is because routines never reuse it.
type Tracer interface {
	Trace(Event)
}

// Func adapts an ordinary function to Tracer.
type Func func(Event)

// Trace calls f(e).
func (f Func) Trace(e Event) { f(e) }

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// Nop is a Tracer that discards every event.
var Nop Tracer = nopTracer{}

// Emitter stamps events of a single routine call with the routine name and a
// running step number. The zero value is disabled.
type Emitter struct {
	t    Tracer
	op   string
	step int
}

// NewEmitter returns an Emitter for op that forwards to t.
// A nil t, or Nop, yields a disabled Emitter.
func NewEmitter(t Tracer, op string) Emitter {
	if t == nil || t == Nop {
		return Emitter{op: op}
	}

	return Emitter{t: t, op: op}
}

// Enabled reports whether events reach a real Tracer. Routines check it
// before building an Event so the disabled path stays allocation free.
func (e *Emitter) Enabled() bool { return e.t != nil }

// Emit sends one event and bumps the step counter.
func (e *Emitter) Emit(a Action, fixed, left, right int, values ...any) {
	if e.t == nil {
		return
	}
	e.t.Trace(Event{
		Op:     e.op,
		Step:   e.step,
		Action: a,
		Fixed:  fixed,
		Left:   left,
		Right:  right,
		Values: values,
	})
	e.step++
}
