package wire

import "testing"

// collectTracer accumulates trace events.
type collectTracer struct {
	events []TraceEvent
}

func (c *collectTracer) Trace(ev TraceEvent) {
	c.events = append(c.events, ev)
}

func (c *collectTracer) kinds() []TraceKind {
	kinds := make([]TraceKind, len(c.events))
	for i, ev := range c.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestTracerSequence(t *testing.T) {
	tr := &collectTracer{}
	SetTracer(tr)
	defer SetTracer(nil)

	w := NewWire()
	w.SetLabel("sda")
	d := NewDriver(w) // attach + resolve
	d.Drive(Pull, true)

	want := []TraceKind{TraceAttach, TraceResolve, TraceDrive, TraceResolve, TraceNotify}
	got := tr.kinds()
	if len(got) != len(want) {
		t.Fatalf("trace kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("trace kinds = %v, want %v", got, want)
		}
	}

	last := tr.events[len(tr.events)-1]
	if last.Wire != w || last.Wire.Label() != "sda" {
		t.Error("notify event should reference the labeled wire")
	}
	if last.Resolved.Strength != Pull || last.Resolved.Value != 1 {
		t.Errorf("notify resolved = %+v, want pull/1", last.Resolved)
	}
	if last.Conflict {
		t.Error("notify should not report conflict")
	}
}

func TestTracerDisabled(t *testing.T) {
	SetTracer(nil)
	w := NewWire()
	d := NewDriver(w)
	d.Drive(Pull, true) // no tracer: must not panic
	if value, _ := w.Sense(); !value {
		t.Error("Sense() = false, want true")
	}
}
