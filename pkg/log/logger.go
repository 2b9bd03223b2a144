package log

// Logger is the interface applications implement to receive trace
// events. Pass NoopLogger (or no tracer at all) to disable capture.
type Logger interface {
	// Log records a trace event. The event should be processed
	// quickly; Log runs inline with the simulation update.
	Log(event Event)
}

// NoopLogger discards all events. Use when capture is disabled.
// NoopLogger is usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
