package netlist

import (
	"fmt"

	"github.com/virtwire/virtwire-go/pkg/wire"
)

// Board holds the wires and drivers built from a netlist, addressable
// by name.
type Board struct {
	wires   map[string]*wire.Wire
	drivers map[string]*wire.Driver

	// Definition order, for deterministic listings.
	wireNames   []string
	driverNames []string
}

// Build constructs the wires and drivers a netlist describes. All
// attachments are made first, then every initial drive is applied in
// one batch, so no transient intermediate state is ever resolved.
//
// Unlike the core (whose operations are total), Build validates:
// missing names, duplicate names, unknown wire references, and a
// driver definition carrying both a digital and an analogue value are
// errors.
func Build(nl *RawNetlist) (*Board, error) {
	b := &Board{
		wires:   make(map[string]*wire.Wire),
		drivers: make(map[string]*wire.Driver),
	}

	for i, wd := range nl.Wires {
		if wd.Name == "" {
			return nil, fmt.Errorf("wire %d: missing name", i)
		}
		if _, ok := b.wires[wd.Name]; ok {
			return nil, fmt.Errorf("wire %q: duplicate name", wd.Name)
		}
		w := wire.NewWire()
		w.SetLabel(wd.Name)
		if wd.Intrinsic != 0 {
			w.SetIntrinsic(wd.Intrinsic)
		}
		b.wires[wd.Name] = w
		b.wireNames = append(b.wireNames, wd.Name)
	}

	var initial []wire.Drive
	for i, dd := range nl.Drivers {
		if dd.Name == "" {
			return nil, fmt.Errorf("driver %d: missing name", i)
		}
		if _, ok := b.drivers[dd.Name]; ok {
			return nil, fmt.Errorf("driver %q: duplicate name", dd.Name)
		}
		d := wire.NewDriver(nil)
		d.SetLabel(dd.Name)
		for _, wn := range dd.Wires {
			w, ok := b.wires[wn]
			if !ok {
				return nil, fmt.Errorf("driver %q: unknown wire %q", dd.Name, wn)
			}
			w.Attach(d)
		}
		b.drivers[dd.Name] = d
		b.driverNames = append(b.driverNames, dd.Name)

		drive, err := initialDrive(d, dd)
		if err != nil {
			return nil, err
		}
		if drive != nil {
			initial = append(initial, *drive)
		}
	}

	wire.MultiDrive(initial)
	return b, nil
}

// initialDrive translates a driver definition's initial value into a
// batch entry, or nil for an undriven driver.
func initialDrive(d *wire.Driver, dd RawDriverDef) (*wire.Drive, error) {
	if dd.Digital != nil && dd.Analogue != nil {
		return nil, fmt.Errorf("driver %q: both digital and analogue values given", dd.Name)
	}

	strength := wire.HiZ
	if dd.Strength != "" {
		var err error
		strength, err = wire.ParseStrength(dd.Strength)
		if err != nil {
			return nil, fmt.Errorf("driver %q: %w", dd.Name, err)
		}
	}
	if strength == wire.HiZ {
		if dd.Digital != nil || dd.Analogue != nil {
			return nil, fmt.Errorf("driver %q: initial value given without a strength", dd.Name)
		}
		return nil, nil
	}

	drive := wire.Drive{Driver: d, Strength: strength}
	switch {
	case dd.Analogue != nil:
		drive.Mode = wire.ModeAnalogue
		drive.Value = *dd.Analogue
	case dd.Digital != nil && *dd.Digital:
		drive.Mode = wire.ModeDigital
		drive.Value = 1
	default:
		// Driven with no value: digital false.
		drive.Mode = wire.ModeDigital
	}
	return &drive, nil
}

// LoadBoard loads a netlist file and builds it.
func LoadBoard(path string) (*Board, error) {
	nl, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(nl)
}

// Wire returns the named wire, or nil if absent. A nil result is a
// valid Hi-Z target for all core operations.
func (b *Board) Wire(name string) *wire.Wire {
	return b.wires[name]
}

// Driver returns the named driver, or nil if absent.
func (b *Board) Driver(name string) *wire.Driver {
	return b.drivers[name]
}

// WireNames returns the wire names in definition order.
func (b *Board) WireNames() []string {
	return b.wireNames
}

// DriverNames returns the driver names in definition order.
func (b *Board) DriverNames() []string {
	return b.driverNames
}

// Close detaches every driver and releases every wire's listeners.
func (b *Board) Close() {
	for _, name := range b.driverNames {
		b.drivers[name].Close()
	}
	for _, name := range b.wireNames {
		b.wires[name].Close()
	}
}
