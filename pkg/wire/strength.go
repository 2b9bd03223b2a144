package wire

import "fmt"

// Strength is a drive strength from Hi-Z (undriven) to Supply.
// The strongest driver attached to a wire wins arbitration.
type Strength uint8

const (
	// HiZ is high impedance: the driver does not participate.
	HiZ Strength = 0

	// Small is the weakest driven strength (small capacitance).
	Small Strength = 1

	// Medium is a medium capacitance drive.
	Medium Strength = 2

	// Weak is a weak drive.
	Weak Strength = 3

	// Large is a large capacitance drive.
	Large Strength = 4

	// Pull is a pull-up/pull-down resistor drive.
	Pull Strength = 5

	// Strong is a strong drive.
	Strong Strength = 6

	// Supply is the strongest drive (direct supply connection).
	Supply Strength = 7
)

const (
	// DefaultStrength is the usual strength for actively driven lines.
	DefaultStrength = Pull

	// MaxStrength is the strongest representable strength.
	MaxStrength = Supply
)

// strengthNames maps Strength values to their keyword form, as used
// in netlist files and the interactive shell.
var strengthNames = [...]string{
	"hi-z", "small", "medium", "weak", "large", "pull", "strong", "supply",
}

// String returns the strength keyword, e.g. "pull".
func (s Strength) String() string {
	if int(s) < len(strengthNames) {
		return strengthNames[s]
	}
	return fmt.Sprintf("strength(%d)", uint8(s))
}

// ParseStrength parses a strength keyword as produced by String.
// "z" and "hiz" are accepted aliases for "hi-z".
func ParseStrength(s string) (Strength, error) {
	switch s {
	case "z", "hiz":
		return HiZ, nil
	}
	for i, name := range strengthNames {
		if s == name {
			return Strength(i), nil
		}
	}
	return HiZ, fmt.Errorf("unknown strength %q (use: hi-z, small, medium, weak, large, pull, strong, supply)", s)
}
