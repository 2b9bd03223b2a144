package wire

// TraceKind classifies a trace event.
type TraceKind uint8

const (
	// TraceDrive is a driver accepting a new value in a batch.
	TraceDrive TraceKind = iota

	// TraceResolve is a wire recomputing its cached value.
	TraceResolve

	// TraceNotify is a wire about to dispatch to its listeners.
	TraceNotify

	// TraceAttach is a driver attached to a wire.
	TraceAttach

	// TraceDetach is a driver detached from a wire.
	TraceDetach

	// TraceReentrant is a listener-list mutation diagnosed during an
	// in-flight dispatch on the same wire.
	TraceReentrant
)

// String returns the trace kind name.
func (k TraceKind) String() string {
	names := []string{"drive", "resolve", "notify", "attach", "detach", "reentrant"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// TraceEvent describes one state transition inside the simulation.
// Wire is nil for driver-only events; Driver is nil for wire-only
// events. Resolved and Conflict carry the post-transition state where
// meaningful.
type TraceEvent struct {
	Kind     TraceKind
	Wire     *Wire
	Driver   *Driver
	Resolved DriveValue
	Conflict bool
}

// Tracer receives every trace event. Implementations must not drive
// wires from Trace; the hook runs in the middle of update phases.
type Tracer interface {
	Trace(ev TraceEvent)
}

// tracer is the package-wide trace hook. The execution model is
// single-threaded, so a plain variable suffices.
var tracer Tracer

// SetTracer installs t as the trace hook for all wires and drivers.
// Pass nil to disable tracing.
func SetTracer(t Tracer) {
	tracer = t
}

func trace(ev TraceEvent) {
	if tracer != nil {
		tracer.Trace(ev)
	}
}
