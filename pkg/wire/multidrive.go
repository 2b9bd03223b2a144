package wire

// Drive is one entry of a batched update: a driver plus the value it
// should assert. Value and Mode are ignored when Strength is HiZ.
// A nil Driver entry is skipped.
type Drive struct {
	Driver   *Driver
	Strength Strength
	Mode     ValueMode
	Value    int
}

// MultiDrive updates many drivers as one coherent unit: the net
// effect is as if all drivers changed simultaneously. A wire attached
// to several drivers in the batch is resolved exactly once against
// their final values, and each affected wire's listeners fire at most
// once, only if its observable state changed across the whole call.
//
// A driver should appear at most once per call; a repeated driver is
// a usage error with unspecified behavior.
//
// The call proceeds in three phases, each over the whole batch:
// apply the new values and mark affected wires, resolve each marked
// wire once, then notify. Notification runs only after every wire has
// settled, so a listener on one wire observes the final state of any
// other wire in the same batch.
func MultiDrive(drives []Drive) {
	// Phase 1: store new values on their drivers and mark every
	// attached wire as needing re-resolution. Entries that do not
	// actually change their driver are skipped entirely.
	for _, wd := range drives {
		d := wd.Driver
		if d == nil {
			continue
		}
		next := DriveValue{Strength: wd.Strength, Mode: wd.Mode, Value: wd.Value}
		if next.Strength > MaxStrength {
			next.Strength = MaxStrength
		}
		if next.Strength == HiZ {
			next = hiZValue
		}
		if d.value == next {
			continue
		}
		d.value = next
		d.changed = true
		trace(TraceEvent{Kind: TraceDrive, Driver: d, Resolved: next})
		for _, w := range d.wires {
			w.driverChanged = true
		}
	}

	// Phase 2: resolve each marked wire exactly once.
	for _, wd := range drives {
		d := wd.Driver
		if d == nil || !d.changed {
			continue
		}
		for _, w := range d.wires {
			if w.driverChanged {
				w.resolve() // may set w.changed
				w.driverChanged = false
			}
		}
	}

	// Phase 3: notify. Every wire in the batch has settled by now.
	for _, wd := range drives {
		d := wd.Driver
		if d == nil || !d.changed {
			continue
		}
		d.changed = false
		for _, w := range d.wires {
			w.notifyIfChanged()
		}
	}
}

// MultiSense returns the combined digital values of up to 32 wires as
// a bitmask (wires[0] in bit 0; a Hi-Z or nil wire contributes 0) and
// the weakest strength among them. Wires beyond the 32nd are ignored.
// An empty slice senses 0 at Hi-Z.
func MultiSense(wires []*Wire) (uint32, Strength) {
	weakest := HiZ
	var result uint32

	n := len(wires)
	if n > 32 {
		n = 32
	}
	for i := 0; i < n; i++ {
		value, strength := wires[i].Sense()
		if value {
			result |= 1 << i
		}
		if i == 0 || strength < weakest {
			weakest = strength
		}
	}
	return result, weakest
}
