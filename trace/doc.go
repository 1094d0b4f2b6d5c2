// Package trace is the step observer shared by every two-pointer routine.
//
// What
//
//   - A routine reports each pointer step as an Event: which pointers it
//     looked at, what it compared, and what it did next (advance, retreat,
//     record a match, overwrite a slot, drain a tail).
//   - Observers implement Tracer. Three are provided:
//   - Nop:      discards everything (the default in every routine).
//   - Recorder: keeps events in memory, handy in tests and teaching tools.
//   - NewZap:   writes events to a *zap.Logger at debug level.
//   - Func adapts a plain function to Tracer.
//
// Why
//
//	Step-by-step narration is how two-pointer scans are usually taught. Keeping
//	it behind a Tracer means the algorithms stay silent by default and the
//	narration can be routed to a test, a log, or a UI.
//
// Usage
//
//	rec := &trace.Recorder{}
//	pair, err := twosum.TwoSum([]int{1, 2, 3, 4, 5}, 9, twosum.WithTracer(rec))
//	for _, ev := range rec.Events {
//		fmt.Println(ev)
//	}
//
//	logger, _ := zap.NewDevelopment()
//	ok := palindrome.IsPalindromeString("racecar",
//		palindrome.WithTracer(trace.NewZap(logger)))
//
// Cost
//
//	With the default Nop tracer a routine performs no extra allocation:
//	event construction is guarded by Emitter.Enabled.
package trace
