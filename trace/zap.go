package trace

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StepMessage is the log message used for every traced step.
const StepMessage = "two-pointer step"

type zapTracer struct {
	logger *zap.Logger
}

// NewZap returns a Tracer that logs each event to logger at debug level with
// structured fields: op, step, action, left, right, values and, for nested
// scans, fixed. A nil logger yields Nop.
func NewZap(logger *zap.Logger) Tracer {
	if logger == nil {
		return Nop
	}

	return zapTracer{logger: logger}
}

func (z zapTracer) Trace(e Event) {
	ce := z.logger.Check(zapcore.DebugLevel, StepMessage)
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, 7)
	fields = append(fields,
		zap.String("op", e.Op),
		zap.Int("step", e.Step),
		zap.Stringer("action", e.Action),
	)
	if e.Fixed != NoIndex {
		fields = append(fields, zap.Int("fixed", e.Fixed))
	}
	fields = append(fields,
		zap.Int("left", e.Left),
		zap.Int("right", e.Right),
		zap.Any("values", e.Values),
	)
	ce.Write(fields...)
}
