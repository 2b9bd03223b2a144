package interactive

import (
	"testing"

	"github.com/virtwire/virtwire-go/pkg/wire"
)

func TestParseDriveValue(t *testing.T) {
	tests := []struct {
		token string
		mode  wire.ValueMode
		value int
		hiZ   bool
		ok    bool
	}{
		{"0", wire.ModeDigital, 0, false, true},
		{"1", wire.ModeDigital, 1, false, true},
		{"z", 0, 0, true, true},
		{"a3300000", wire.ModeAnalogue, 3300000, false, true},
		{"a-12345", wire.ModeAnalogue, -12345, false, true},
		{"2", 0, 0, false, false},
		{"axyz", 0, 0, false, false},
		{"", 0, 0, false, false},
	}

	for _, tt := range tests {
		mode, value, hiZ, err := parseDriveValue(tt.token)
		if tt.ok != (err == nil) {
			t.Errorf("parseDriveValue(%q) error = %v, want ok=%v", tt.token, err, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if mode != tt.mode || value != tt.value || hiZ != tt.hiZ {
			t.Errorf("parseDriveValue(%q) = %v, %d, %v, want %v, %d, %v",
				tt.token, mode, value, hiZ, tt.mode, tt.value, tt.hiZ)
		}
	}
}

func TestParseDrives(t *testing.T) {
	s := &Shell{
		wires:   map[string]*wire.Wire{},
		drivers: map[string]*wire.Driver{},
	}
	s.drivers["d1"] = wire.NewDriver(nil)
	s.drivers["d2"] = wire.NewDriver(nil)

	t.Run("Batch", func(t *testing.T) {
		drives, err := s.parseDrives([]string{"d1", "weak", "1", "d2", "strong", "0"})
		if err != nil {
			t.Fatalf("parseDrives failed: %v", err)
		}
		if len(drives) != 2 {
			t.Fatalf("got %d drives, want 2", len(drives))
		}
		if drives[0].Strength != wire.Weak || drives[0].Value != 1 {
			t.Errorf("drives[0] = %+v, want weak/1", drives[0])
		}
		if drives[1].Strength != wire.Strong || drives[1].Value != 0 {
			t.Errorf("drives[1] = %+v, want strong/0", drives[1])
		}
	})

	t.Run("HiZOverridesStrength", func(t *testing.T) {
		drives, err := s.parseDrives([]string{"d1", "pull", "z"})
		if err != nil {
			t.Fatalf("parseDrives failed: %v", err)
		}
		if drives[0].Strength != wire.HiZ {
			t.Errorf("strength = %v, want hi-z", drives[0].Strength)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		for _, args := range [][]string{
			{},
			{"d1", "weak"},
			{"ghost", "weak", "1"},
			{"d1", "mega", "1"},
			{"d1", "weak", "7"},
		} {
			if _, err := s.parseDrives(args); err == nil {
				t.Errorf("parseDrives(%v) should fail", args)
			}
		}
	})
}

func TestFormatWire(t *testing.T) {
	w := wire.NewWire()
	if got := formatWire(w); got != "hi-z" {
		t.Errorf("formatWire(undriven) = %q, want hi-z", got)
	}

	d := wire.NewDriver(w)
	d.Drive(wire.Pull, true)
	if got := formatWire(w); got != "1/3300000uV (pull)" {
		t.Errorf("formatWire = %q, want %q", got, "1/3300000uV (pull)")
	}

	d2 := wire.NewDriver(w)
	d2.Drive(wire.Pull, false)
	got := formatWire(w)
	if got[:9] != "CONFLICT " {
		t.Errorf("formatWire of conflicted wire = %q, want CONFLICT prefix", got)
	}
}
