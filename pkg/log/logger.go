package log

// Logger is the interface applications implement to receive trace events.
// Pass nil or NoopLogger to disable tracing.
type Logger interface {
	// Log records a trace event. Implementations must be thread-safe.
	// The event should be processed quickly or queued; blocking slows the caller.
	Log(event Event)
}

// NoopLogger discards all events. Use when tracing is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}

// Tagged wraps a Logger and stamps every event with a trace ID.
// Events that already carry a trace ID keep theirs.
func Tagged(l Logger, traceID string) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return &taggedLogger{next: l, traceID: traceID}
}

type taggedLogger struct {
	next    Logger
	traceID string
}

func (t *taggedLogger) Log(event Event) {
	if event.TraceID == "" {
		event.TraceID = t.traceID
	}
	t.next.Log(event)
}
