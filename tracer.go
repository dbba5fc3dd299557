package nbfx

import "go.uber.org/zap"

// Tracer receives structured trace lines from the decoder. Decode emits one
// line per call, after the root element is decoded, naming the root element
// and the number of bytes consumed; individual records are not traced. The
// tracer is an optional, injected collaborator rather than global state.
type Tracer interface {
	Tracef(template string, args ...interface{})
}

// nopTracer discards every trace line. It is the default when no tracer is
// configured via WithTracer.
type nopTracer struct{}

func (nopTracer) Tracef(string, ...interface{}) {}

// zapTracer adapts a *zap.SugaredLogger to Tracer.
type zapTracer struct {
	log *zap.SugaredLogger
}

func (t zapTracer) Tracef(template string, args ...interface{}) {
	t.log.Debugf(template, args...)
}

// NewZapTracer wraps log as a Tracer, grounded in the same
// zap.SugaredLogger construction used for JSON/console logging elsewhere in
// the pack (DICOM decoder's core.NewJSONLogger/NewConsoleLogger).
func NewZapTracer(log *zap.SugaredLogger) Tracer {
	return zapTracer{log: log}
}
