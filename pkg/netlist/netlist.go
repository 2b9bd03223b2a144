package netlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawNetlist represents a board definition loaded from YAML.
type RawNetlist struct {
	Version string         `yaml:"version"`
	Wires   []RawWireDef   `yaml:"wires"`
	Drivers []RawDriverDef `yaml:"drivers"`
}

// RawWireDef represents a wire definition.
type RawWireDef struct {
	Name string `yaml:"name"`

	// Intrinsic is the analogue value equated with digital true.
	// Zero means the package default.
	Intrinsic int `yaml:"intrinsic"`
}

// RawDriverDef represents a driver definition.
type RawDriverDef struct {
	Name string `yaml:"name"`

	// Wires lists the names of the wires this driver attaches to.
	Wires []string `yaml:"wires"`

	// Strength is the initial drive strength keyword ("pull",
	// "strong", ...). Empty or "hi-z" leaves the driver undriven.
	Strength string `yaml:"strength"`

	// Digital is the initial digital value. Mutually exclusive with
	// Analogue.
	Digital *bool `yaml:"digital"`

	// Analogue is the initial analogue value in microvolts.
	Analogue *int `yaml:"analogue"`
}

// Parse parses a netlist from YAML bytes.
func Parse(data []byte) (*RawNetlist, error) {
	var nl RawNetlist
	if err := yaml.Unmarshal(data, &nl); err != nil {
		return nil, fmt.Errorf("parsing netlist: %w", err)
	}
	return &nl, nil
}

// Load loads and parses a netlist from a file.
func Load(path string) (*RawNetlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}
