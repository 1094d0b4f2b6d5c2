package trace

// Recorder is a Tracer that keeps every event in memory, in order.
// It is not safe for concurrent use.
type Recorder struct {
	Events []Event
}

// Trace appends e to r.Events.
func (r *Recorder) Trace(e Event) {
	r.Events = append(r.Events, e)
}

// Actions returns the action of every recorded event, in order.
func (r *Recorder) Actions() []Action {
	out := make([]Action, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Action
	}

	return out
}

// Count returns how many recorded events carry action a.
func (r *Recorder) Count(a Action) int {
	n := 0
	for _, e := range r.Events {
		if e.Action == a {
			n++
		}
	}

	return n
}

// Reset drops all recorded events, keeping the allocated capacity.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
