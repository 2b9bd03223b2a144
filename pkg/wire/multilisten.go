package wire

import "slices"

// MultiHandler is an aggregate change listener over a fixed wire
// list. value is the MultiSense bitmask over the wires, weakest the
// weakest strength among them.
type MultiHandler func(opaque any, value uint32, weakest Strength, wires []*Wire)

// MultiListener observes the combined digital value of a fixed list
// of wires. Obtain one from MultiListen and dispose of it with
// Unlisten.
//
// The handler fires when the combined state changes under the same
// rule as a single wire: the bitmask changes while all wires are
// driven, any wire goes Hi-Z when none was, all wires leave Hi-Z, or
// conflict appears or fully clears. While any constituent wire
// remains in conflict, further aggregate notifications are
// suppressed, so partial undefined states are never delivered.
type MultiListener struct {
	handler MultiHandler
	opaque  any
	wires   []*Wire

	value      uint32
	weakest    Strength
	inConflict bool
}

// multiWireHandler is the single-wire handler registered on each
// constituent wire; opaque is the *MultiListener.
func multiWireHandler(opaque any, _ *Wire) {
	ml := opaque.(*MultiListener)

	inConflict := false
	for i := len(ml.wires) - 1; !inConflict && i >= 0; i-- {
		inConflict = ml.wires[i].Conflicted()
	}
	if inConflict && ml.inConflict {
		// Don't update while wires remain in conflict.
		return
	}

	value, weakest := MultiSense(ml.wires)
	changed := (inConflict != ml.inConflict) ||
		(weakest == HiZ) != (ml.weakest == HiZ) ||
		(weakest != HiZ && value != ml.value)
	if changed {
		ml.value = value
		ml.weakest = weakest
		ml.inConflict = inConflict
		ml.handler(ml.opaque, value, weakest, ml.wires)
	}
}

// MultiListen registers handler as an aggregate listener over wires
// and returns the handle used for unregistration. The wire list is
// copied; entries may be nil (they sense as Hi-Z). At most 32 wires
// are observed; extras are clamped off at registration. Returns nil
// if wires is empty.
func MultiListen(wires []*Wire, handler MultiHandler, opaque any) *MultiListener {
	if len(wires) == 0 || handler == nil {
		return nil
	}
	ws := slices.Clone(wires)
	if len(ws) > 32 {
		ws = ws[:32]
	}
	ml := &MultiListener{
		handler: handler,
		opaque:  opaque,
		wires:   ws,
		weakest: HiZ,
	}
	for _, w := range ws {
		w.Listen(multiWireHandler, ml)
	}
	return ml
}

// Unlisten removes the aggregate listener from all its wires.
// Safe on a nil receiver.
func (ml *MultiListener) Unlisten() {
	if ml == nil {
		return
	}
	for _, w := range ml.wires {
		w.Unlisten(multiWireHandler, ml)
	}
}

// Wires returns the observed wire list. The slice must not be
// modified.
func (ml *MultiListener) Wires() []*Wire {
	if ml == nil {
		return nil
	}
	return ml.wires
}
