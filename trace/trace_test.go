package trace_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/twopointer/trace"
)

func TestAction_String(t *testing.T) {
	assert.Equal(t, "compare", trace.Compare.String())
	assert.Equal(t, "retreat-right", trace.RetreatRight.String())
	assert.Equal(t, "fix", trace.Fix.String())
	assert.Equal(t, "action(200)", trace.Action(200).String())
}

func TestEmitter_Disabled(t *testing.T) {
	for _, tr := range []trace.Tracer{nil, trace.Nop} {
		em := trace.NewEmitter(tr, "op")
		assert.False(t, em.Enabled())
		em.Emit(trace.Compare, trace.NoIndex, 0, 1) // must not panic
	}

	var zero trace.Emitter
	assert.False(t, zero.Enabled())
}

func TestEmitter_NumbersSteps(t *testing.T) {
	rec := &trace.Recorder{}
	em := trace.NewEmitter(rec, "demo")
	require.True(t, em.Enabled())

	em.Emit(trace.Compare, trace.NoIndex, 0, 3, 1, 4)
	em.Emit(trace.AdvanceLeft, trace.NoIndex, 1, 3)
	em.Emit(trace.Match, 0, 1, 3, 2, 4, 6)

	want := []trace.Event{
		{Op: "demo", Step: 0, Action: trace.Compare, Fixed: trace.NoIndex, Left: 0, Right: 3, Values: []any{1, 4}},
		{Op: "demo", Step: 1, Action: trace.AdvanceLeft, Fixed: trace.NoIndex, Left: 1, Right: 3},
		{Op: "demo", Step: 2, Action: trace.Match, Fixed: 0, Left: 1, Right: 3, Values: []any{2, 4, 6}},
	}
	if diff := cmp.Diff(want, rec.Events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []trace.Action{trace.Compare, trace.AdvanceLeft, trace.Match}, rec.Actions())
	assert.Equal(t, 1, rec.Count(trace.Match))

	rec.Reset()
	assert.Empty(t, rec.Events)
}

func TestFunc(t *testing.T) {
	var got []string
	em := trace.NewEmitter(trace.Func(func(e trace.Event) {
		got = append(got, e.String())
	}), "palindrome")

	em.Emit(trace.Compare, trace.NoIndex, 0, 2, 'a', 'a')
	em.Emit(trace.Fix, 4, 5, 9)

	assert.Equal(t, []string{
		"palindrome#0 compare left=0 right=2 [97 97]",
		"palindrome#1 fix fixed=4 left=5 right=9 []",
	}, got)
}

func TestNewZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	em := trace.NewEmitter(trace.NewZap(zap.New(core)), "threesum")

	em.Emit(trace.Fix, 0, 1, 4, 1)
	em.Emit(trace.Compare, trace.NoIndex, 1, 4, 2, 6, 8)

	entries := logs.FilterMessage(trace.StepMessage).All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "threesum", first["op"])
	assert.Equal(t, "fix", first["action"])
	assert.EqualValues(t, 0, first["fixed"])
	assert.EqualValues(t, 1, first["left"])
	assert.EqualValues(t, 4, first["right"])

	second := entries[1].ContextMap()
	_, hasFixed := second["fixed"]
	assert.False(t, hasFixed, "fixed is omitted when it does not apply")
	assert.EqualValues(t, 1, second["step"])
}

func TestNewZap_LevelFiltered(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	em := trace.NewEmitter(trace.NewZap(zap.New(core)), "merge")
	em.Emit(trace.Drain, trace.NoIndex, 3, 3)

	assert.Zero(t, logs.Len(), "debug steps are dropped by an info-level logger")
}

func TestNewZap_NilLogger(t *testing.T) {
	assert.Equal(t, trace.Nop, trace.NewZap(nil))
}
