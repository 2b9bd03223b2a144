package wire

import "testing"

// fakeLine records the levels it was driven to.
type fakeLine struct {
	levels []bool
}

func (l *fakeLine) Set(level bool) {
	l.levels = append(l.levels, level)
}

func TestLineDriver(t *testing.T) {
	w := NewWire()
	d := NewDriver(w)

	setLevel := LineDriver(d)
	setLevel(true)
	if value, strength := w.Sense(); !value || strength != DefaultStrength {
		t.Errorf("Sense() = %v, %v, want true, %v", value, strength, DefaultStrength)
	}
	setLevel(false)
	if value, _ := w.Sense(); value {
		t.Error("Sense() = true after line low, want false")
	}
}

func TestListenLine(t *testing.T) {
	w := NewWire()
	d := NewDriver(w)
	line := &fakeLine{}

	ListenLine(w, line)

	d.Drive(DefaultStrength, true)
	d.Drive(DefaultStrength, false)
	// Hi-Z is not representable on a level-triggered line; the
	// transition is diagnosed and not forwarded.
	d.DriveHiZ()

	want := []bool{true, false}
	if len(line.levels) != len(want) {
		t.Fatalf("line saw %v, want %v", line.levels, want)
	}
	for i := range want {
		if line.levels[i] != want[i] {
			t.Fatalf("line saw %v, want %v", line.levels, want)
		}
	}

	UnlistenLine(w, line)
	d.Drive(DefaultStrength, true)
	if len(line.levels) != 2 {
		t.Errorf("unlistened line saw %d levels, want 2", len(line.levels))
	}
}
