package wire

// Driver is an independent source of a drive value. A driver can be
// attached to any number of wires without cross-interference, so one
// driver can serve, say, as a weak pull-up for a whole bus. A new
// driver's output is Hi-Z.
type Driver struct {
	label string
	value DriveValue
	wires []*Wire

	// changed marks the driver as a pending member of the current
	// MultiDrive batch. It never survives a MultiDrive call.
	changed bool
}

// NewDriver creates a driver at Hi-Z, optionally attached to w.
// Pass nil to create an unattached driver.
func NewDriver(w *Wire) *Driver {
	d := &Driver{value: hiZValue}
	w.Attach(d)
	return d
}

// Close detaches the driver from every attached wire. Each detach
// re-resolves that wire and notifies its listeners on observable
// change. The driver remains usable afterwards.
func (d *Driver) Close() {
	if d == nil {
		return
	}
	for len(d.wires) > 0 {
		d.wires[len(d.wires)-1].Detach(d)
	}
}

// SetLabel sets a diagnostic label reported in trace events.
func (d *Driver) SetLabel(label string) {
	if d != nil {
		d.label = label
	}
}

// Label returns the driver's diagnostic label.
func (d *Driver) Label() string {
	if d == nil {
		return ""
	}
	return d.label
}

// Value returns the driver's current output. A nil driver is Hi-Z.
func (d *Driver) Value() DriveValue {
	if d == nil {
		return hiZValue
	}
	return d.value
}

// Drive sets the driver's digital output. It is the one-element
// batched update, so its notification semantics are identical to
// MultiDrive. A nil driver is a no-op.
func (d *Driver) Drive(strength Strength, dval bool) {
	value := 0
	if dval {
		value = 1
	}
	MultiDrive([]Drive{{
		Driver:   d,
		Strength: strength,
		Mode:     ModeDigital,
		Value:    value,
	}})
}

// DriveAnalogue sets the driver's analogue output.
func (d *Driver) DriveAnalogue(strength Strength, aval int) {
	MultiDrive([]Drive{{
		Driver:   d,
		Strength: strength,
		Mode:     ModeAnalogue,
		Value:    aval,
	}})
}

// DriveHiZ sets the driver's output to Hi-Z (undriven).
func (d *Driver) DriveHiZ() {
	MultiDrive([]Drive{{Driver: d, Strength: HiZ}})
}
