package wire

import (
	"log/slog"
	"reflect"
	"slices"
)

// Handler is a single-wire change listener. opaque is the value given
// to Listen; w is the wire that changed. The handler runs on the
// caller's stack after the wire's state has settled.
type Handler func(opaque any, w *Wire)

// listener pairs a handler with its registration context. handlerPC
// caches the handler's code pointer for Unlisten matching.
type listener struct {
	handler   Handler
	handlerPC uintptr
	opaque    any
}

// Wire is a shared signal line. Its resolved value is a cache
// maintained by arbitration over the attached drivers, so sensing is
// always cheap. The zero value is not usable; call NewWire.
type Wire struct {
	label     string
	intrinsic int

	drivers   []*Driver
	listeners []listener

	resolved DriveValue
	conflict bool

	changed       bool // observable state changed, listeners not yet told
	inCallback    bool // a dispatch pass is on the stack
	driverChanged bool // a batch member wants this wire re-resolved
}

// NewWire creates an undriven wire with the default intrinsic value.
func NewWire() *Wire {
	return &Wire{intrinsic: DefaultIntrinsic}
}

// Close detaches all drivers and removes all listeners. Each detach
// re-resolves the wire and may notify remaining listeners, so
// listeners are removed last. The wire remains usable afterwards; the
// attached drivers survive and merely lose the relation.
func (w *Wire) Close() {
	if w == nil {
		return
	}
	for len(w.drivers) > 0 {
		w.Detach(w.drivers[len(w.drivers)-1])
	}
	w.listeners = nil
}

// SetLabel sets a diagnostic label reported in trace events and the
// reentrant-dispatch warning.
func (w *Wire) SetLabel(label string) {
	if w != nil {
		w.label = label
	}
}

// Label returns the wire's diagnostic label.
func (w *Wire) Label() string {
	if w == nil {
		return ""
	}
	return w.label
}

// SetIntrinsic sets the analogue value equated with digital true,
// used when sensing across modes.
func (w *Wire) SetIntrinsic(v int) {
	if w != nil {
		w.intrinsic = v
	}
}

// Intrinsic returns the wire's intrinsic value, or DefaultIntrinsic
// for a nil wire.
func (w *Wire) Intrinsic() int {
	if w == nil {
		return DefaultIntrinsic
	}
	return w.intrinsic
}

// Attach attaches a driver to the wire. The wire is re-resolved
// against the driver's current value, and listeners are notified if
// the observable state changed. Attaching to a nil wire, or attaching
// a nil driver, is a no-op.
func (w *Wire) Attach(d *Driver) {
	if w == nil || d == nil {
		return
	}
	w.drivers = append(w.drivers, d)
	d.wires = append(d.wires, w)
	trace(TraceEvent{Kind: TraceAttach, Wire: w, Driver: d})
	w.resolve()
	w.notifyIfChanged()
}

// Detach removes a previously attached driver from the wire, then
// re-resolves and notifies on observable change. It is a no-op if the
// driver is not attached.
func (w *Wire) Detach(d *Driver) {
	if w == nil || d == nil {
		return
	}
	i := slices.Index(w.drivers, d)
	if i < 0 {
		return
	}
	w.drivers = slices.Delete(w.drivers, i, i+1)
	if j := slices.Index(d.wires, w); j >= 0 {
		d.wires = slices.Delete(d.wires, j, j+1)
	}
	trace(TraceEvent{Kind: TraceDetach, Wire: w, Driver: d})
	w.resolve()
	w.notifyIfChanged()
}

// Listen registers a change handler with an opaque context. The same
// handler may be registered multiple times, usually with distinct
// contexts. opaque must be comparable (Unlisten matches on it).
// Listening on a nil wire is a no-op.
func (w *Wire) Listen(handler Handler, opaque any) {
	if w == nil || handler == nil {
		return
	}
	w.listeners = append(w.listeners, listener{
		handler:   handler,
		handlerPC: reflect.ValueOf(handler).Pointer(),
		opaque:    opaque,
	})
}

// Unlisten removes the most recently added listener matching handler
// and opaque. The backwards search order pairs naturally with
// registration by the most recent owner. Unknown pairs and nil wires
// are no-ops.
func (w *Wire) Unlisten(handler Handler, opaque any) {
	if w == nil || handler == nil {
		return
	}
	pc := reflect.ValueOf(handler).Pointer()
	for i := len(w.listeners) - 1; i >= 0; i-- {
		if w.listeners[i].handlerPC == pc && w.listeners[i].opaque == opaque {
			w.listeners = slices.Delete(w.listeners, i, i+1)
			return
		}
	}
}

// hasListener reports whether the exact registration is still in the
// live list. Used during dispatch to honor mid-dispatch removals.
func (w *Wire) hasListener(lis listener) bool {
	for i := range w.listeners {
		if w.listeners[i].handlerPC == lis.handlerPC && w.listeners[i].opaque == lis.opaque {
			return true
		}
	}
	return false
}

// callListeners notifies all listeners, most recently registered
// first. Dispatch iterates a snapshot so a handler can unregister
// itself; entries removed mid-dispatch are skipped, entries added
// mid-dispatch wait for the next change. Reentrant dispatch on the
// same wire is diagnosed, not fatal.
func (w *Wire) callListeners() {
	if w.inCallback {
		slog.Warn("wire listener altered wire during its own dispatch",
			slog.String("wire", w.label))
		trace(TraceEvent{Kind: TraceReentrant, Wire: w})
	}
	w.inCallback = true

	snapshot := slices.Clone(w.listeners)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if !w.hasListener(snapshot[i]) {
			continue
		}
		snapshot[i].handler(snapshot[i].opaque, w)
	}

	w.inCallback = false
}

// notifyIfChanged clears the pending-changed flag and dispatches.
// Clearing first makes a dispatch pass idempotent-safe: a handler
// that re-dirties this wire only schedules a future notification.
func (w *Wire) notifyIfChanged() {
	if !w.changed {
		return
	}
	w.changed = false
	trace(TraceEvent{Kind: TraceNotify, Wire: w, Resolved: w.resolved, Conflict: w.conflict})
	w.callListeners()
}

// resolve recomputes the wire's cached value by scanning the attached
// drivers for the strongest signal, and detects conflicts between
// equal-strongest drivers.
//
// It also sets w.changed when the externally observable state
// changes: the value or mode changes while driven, the wire falls to
// or rises from Hi-Z, or conflict toggles. A pending changed flag is
// never cleared here, only possibly set, so flags accumulate across a
// batch. notifyIfChanged clears it.
func (w *Wire) resolve() {
	best := hiZValue
	conflict := false

	for i := len(w.drivers) - 1; i >= 0; i-- {
		dv := w.drivers[i].value
		if dv.Strength == HiZ || best.Strength > dv.Strength {
			continue
		}
		if dv.Strength == best.Strength {
			if conflict {
				continue // already conflicting at this strength
			}
			if best.Mode != dv.Mode || best.Value != dv.Value {
				conflict = true
			}
			continue
		}
		// New strongest driver.
		best = dv
		conflict = false
	}

	if !w.changed {
		w.changed = (conflict != w.conflict) ||
			(best.Strength == HiZ) != (w.resolved.Strength == HiZ) ||
			(best.Strength != HiZ &&
				(best.Mode != w.resolved.Mode || best.Value != w.resolved.Value))
	}

	w.resolved = best
	w.conflict = conflict
	trace(TraceEvent{Kind: TraceResolve, Wire: w, Resolved: best, Conflict: conflict})
}

// Sense returns the wire's digital value and strength. An analogue
// wire senses true at or above half its intrinsic value (truncating
// integer division; hardware models depend on this exact boundary).
// A nil wire senses false at Hi-Z.
func (w *Wire) Sense() (bool, Strength) {
	if w == nil {
		return false, HiZ
	}
	var value bool
	switch w.resolved.Mode {
	case ModeAnalogue:
		value = w.resolved.Value >= w.intrinsic/2
	case ModeDigital:
		value = w.resolved.Value != 0
	}
	return value, w.resolved.Strength
}

// SenseAnalogue returns the wire's analogue value and strength. A
// digitally driven wire senses its intrinsic value when true, zero
// when false. A nil wire senses zero at Hi-Z.
func (w *Wire) SenseAnalogue() (int, Strength) {
	if w == nil {
		return 0, HiZ
	}
	var value int
	switch w.resolved.Mode {
	case ModeAnalogue:
		value = w.resolved.Value
	case ModeDigital:
		if w.resolved.Value != 0 {
			value = w.intrinsic
		}
	}
	return value, w.resolved.Strength
}

// SenseStrength returns the strength of the strongest attached
// driver, or HiZ for an undriven or nil wire.
func (w *Wire) SenseStrength() Strength {
	if w == nil {
		return HiZ
	}
	return w.resolved.Strength
}

// Conflicted reports whether equal-strongest drivers disagree on the
// wire's value or mode. While in conflict the sensed value must not
// be relied upon.
func (w *Wire) Conflicted() bool {
	return w != nil && w.conflict
}

// IsHiZ reports whether the wire is undriven.
func (w *Wire) IsHiZ() bool {
	return w.SenseStrength() == HiZ
}
