// Package netlist loads declarative board definitions from YAML and
// builds the corresponding wires and drivers.
//
// A netlist names a set of wires (with optional intrinsic values) and
// a set of drivers (with the wires they attach to and an optional
// initial drive). Example:
//
//	version: "1"
//	wires:
//	  - name: sda
//	  - name: scl
//	  - name: vmon
//	    intrinsic: 5000000
//	drivers:
//	  - name: pullup
//	    wires: [sda, scl]
//	    strength: pull
//	    digital: true
//	  - name: adc
//	    wires: [vmon]
//	    strength: strong
//	    analogue: 1250000
//	  - name: mcu-sda
//	    wires: [sda]
//
// A driver without a strength starts at Hi-Z. All initial drives are
// applied in a single batch, so listeners registered after Build
// never observe construction transients.
package netlist
