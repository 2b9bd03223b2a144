package log

import (
	"time"

	"github.com/google/uuid"
	"github.com/virtwire/virtwire-go/pkg/wire"
)

// Recorder converts wire trace events into log Events and forwards
// them to a Logger. Install it with wire.SetTracer. Each Recorder is
// one capture session with its own UUID and sequence numbering.
type Recorder struct {
	logger  Logger
	session string
	seq     uint64
}

// NewRecorder creates a Recorder feeding logger, with a fresh
// session ID.
func NewRecorder(logger Logger) *Recorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Recorder{
		logger:  logger,
		session: uuid.NewString(),
	}
}

// SessionID returns the recorder's capture session UUID.
func (r *Recorder) SessionID() string {
	return r.session
}

// Trace implements wire.Tracer.
func (r *Recorder) Trace(ev wire.TraceEvent) {
	r.seq++
	r.logger.Log(Event{
		Timestamp: time.Now(),
		SessionID: r.session,
		Seq:       r.seq,
		Kind:      ev.Kind,
		Wire:      ev.Wire.Label(),
		Driver:    ev.Driver.Label(),
		Strength:  ev.Resolved.Strength,
		Mode:      ev.Resolved.Mode,
		Value:     int64(ev.Resolved.Value),
		Conflict:  ev.Conflict,
	})
}

// Compile-time interface satisfaction check.
var _ wire.Tracer = (*Recorder)(nil)
