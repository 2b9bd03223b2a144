package wire

import "log/slog"

// Line is a generic level-triggered external signal line. The
// bridging helpers below translate between wires and lines in both
// directions; they hold no state beyond the references they are
// given.
type Line interface {
	// Set drives the line to the given level.
	Set(level bool)
}

// LineDriver returns a level handler that asserts d at
// DefaultStrength whenever the external line changes. Wire it to
// whatever delivers external line transitions.
func LineDriver(d *Driver) func(level bool) {
	return func(level bool) {
		d.Drive(DefaultStrength, level)
	}
}

// lineForwarder is the wire listener behind ListenLine.
func lineForwarder(opaque any, w *Wire) {
	line := opaque.(Line)
	if w.IsHiZ() {
		// A level-triggered line has no Hi-Z; keep its last level.
		slog.Warn("wire bridged to line is hi-z", slog.String("wire", w.Label()))
		return
	}
	level, _ := w.Sense()
	line.Set(level)
}

// ListenLine forwards w's digital changes to line. While w is Hi-Z
// changes are not forwarded (and are diagnosed), since a
// level-triggered line cannot represent undriven.
func ListenLine(w *Wire, line Line) {
	w.Listen(lineForwarder, line)
}

// UnlistenLine removes a forwarding registered with ListenLine.
func UnlistenLine(w *Wire, line Line) {
	w.Unlisten(lineForwarder, line)
}
