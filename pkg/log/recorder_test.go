package log

import (
	"testing"

	"github.com/virtwire/virtwire-go/pkg/wire"
)

// captureLogger keeps events in memory.
type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.events = append(c.events, event)
}

func TestRecorderCapturesWireActivity(t *testing.T) {
	sink := &captureLogger{}
	rec := NewRecorder(sink)
	wire.SetTracer(rec)
	defer wire.SetTracer(nil)

	w := wire.NewWire()
	w.SetLabel("scl")
	d := wire.NewDriver(w)
	d.SetLabel("master")
	d.Drive(wire.Pull, true)

	if len(sink.events) == 0 {
		t.Fatal("no events captured")
	}

	// Every event belongs to the recorder's session, in sequence.
	for i, ev := range sink.events {
		if ev.SessionID != rec.SessionID() {
			t.Errorf("event %d session = %q, want %q", i, ev.SessionID, rec.SessionID())
		}
		if ev.Seq != uint64(i+1) {
			t.Errorf("event %d seq = %d, want %d", i, ev.Seq, i+1)
		}
	}

	// The final event is the notify with the settled value.
	last := sink.events[len(sink.events)-1]
	if last.Kind != wire.TraceNotify {
		t.Errorf("last event kind = %v, want notify", last.Kind)
	}
	if last.Wire != "scl" {
		t.Errorf("last event wire = %q, want scl", last.Wire)
	}
	if last.Strength != wire.Pull || last.Value != 1 {
		t.Errorf("last event = %v/%d, want pull/1", last.Strength, last.Value)
	}
}

func TestRecorderSessionIDs(t *testing.T) {
	a := NewRecorder(NoopLogger{})
	b := NewRecorder(NoopLogger{})
	if a.SessionID() == "" || a.SessionID() == b.SessionID() {
		t.Errorf("session IDs %q and %q should be distinct and non-empty",
			a.SessionID(), b.SessionID())
	}
}

func TestRecorderNilLogger(t *testing.T) {
	rec := NewRecorder(nil)
	rec.Trace(wire.TraceEvent{Kind: wire.TraceResolve}) // must not panic
}

func TestMultiLoggerFansOut(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	m := NewMultiLogger(a, b, NoopLogger{})
	m.Log(Event{Seq: 7})
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("fan-out delivered %d/%d events, want 1/1", len(a.events), len(b.events))
	}
	if a.events[0].Seq != 7 {
		t.Errorf("delivered seq = %d, want 7", a.events[0].Seq)
	}
}
