package netlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virtwire/virtwire-go/pkg/wire"
)

const i2cBus = `
version: "1"
wires:
  - name: sda
  - name: scl
  - name: vmon
    intrinsic: 5000000
drivers:
  - name: pullup
    wires: [sda, scl]
    strength: pull
    digital: true
  - name: adc
    wires: [vmon]
    strength: strong
    analogue: 1250000
  - name: mcu-sda
    wires: [sda]
`

func TestParse(t *testing.T) {
	nl, err := Parse([]byte(i2cBus))
	require.NoError(t, err)

	assert.Equal(t, "1", nl.Version)
	require.Len(t, nl.Wires, 3)
	assert.Equal(t, "sda", nl.Wires[0].Name)
	assert.Equal(t, 5000000, nl.Wires[2].Intrinsic)

	require.Len(t, nl.Drivers, 3)
	pullup := nl.Drivers[0]
	assert.Equal(t, []string{"sda", "scl"}, pullup.Wires)
	assert.Equal(t, "pull", pullup.Strength)
	require.NotNil(t, pullup.Digital)
	assert.True(t, *pullup.Digital)
	assert.Nil(t, pullup.Analogue)

	mcu := nl.Drivers[2]
	assert.Empty(t, mcu.Strength)
	assert.Nil(t, mcu.Digital)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("wires: [a: b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing netlist")
}

func TestBuild(t *testing.T) {
	nl, err := Parse([]byte(i2cBus))
	require.NoError(t, err)

	board, err := Build(nl)
	require.NoError(t, err)
	defer board.Close()

	assert.Equal(t, []string{"sda", "scl", "vmon"}, board.WireNames())
	assert.Equal(t, []string{"pullup", "adc", "mcu-sda"}, board.DriverNames())

	// The shared pull-up holds both bus lines high.
	sda, scl := board.Wire("sda"), board.Wire("scl")
	value, strength := sda.Sense()
	assert.True(t, value)
	assert.Equal(t, wire.Pull, strength)
	value, _ = scl.Sense()
	assert.True(t, value)

	// The custom intrinsic applies: 1.25e6 < 5e6/2 senses false.
	vmon := board.Wire("vmon")
	avalue, strength := vmon.SenseAnalogue()
	assert.Equal(t, 1250000, avalue)
	assert.Equal(t, wire.Strong, strength)
	dvalue, _ := vmon.Sense()
	assert.False(t, dvalue)

	// The undriven driver is attached but Hi-Z.
	mcu := board.Driver("mcu-sda")
	require.NotNil(t, mcu)
	assert.Equal(t, wire.HiZ, mcu.Value().Strength)

	// It can pull the line low at strong strength.
	mcu.Drive(wire.Strong, false)
	value, strength = sda.Sense()
	assert.False(t, value)
	assert.Equal(t, wire.Strong, strength)

	// Unknown names come back nil and sense as Hi-Z.
	assert.Nil(t, board.Wire("nope"))
	assert.True(t, board.Wire("nope").IsHiZ())
}

func TestBuildSingleBatch(t *testing.T) {
	// Initial drives are one batch: a listener registered on a built
	// board has no pending notifications, and construction resolved
	// each wire against final values only.
	nl, err := Parse([]byte(i2cBus))
	require.NoError(t, err)
	board, err := Build(nl)
	require.NoError(t, err)
	defer board.Close()

	notified := 0
	board.Wire("sda").Listen(func(any, *wire.Wire) { notified++ }, nil)
	assert.Zero(t, notified)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing wire name",
			yaml:    "wires:\n  - intrinsic: 5\n",
			wantErr: "missing name",
		},
		{
			name:    "duplicate wire",
			yaml:    "wires:\n  - name: a\n  - name: a\n",
			wantErr: "duplicate name",
		},
		{
			name:    "unknown wire reference",
			yaml:    "drivers:\n  - name: d\n    wires: [ghost]\n",
			wantErr: `unknown wire "ghost"`,
		},
		{
			name:    "duplicate driver",
			yaml:    "drivers:\n  - name: d\n  - name: d\n",
			wantErr: "duplicate name",
		},
		{
			name:    "bad strength",
			yaml:    "drivers:\n  - name: d\n    strength: mega\n",
			wantErr: "unknown strength",
		},
		{
			name:    "both values",
			yaml:    "drivers:\n  - name: d\n    strength: pull\n    digital: true\n    analogue: 5\n",
			wantErr: "both digital and analogue",
		},
		{
			name:    "value without strength",
			yaml:    "drivers:\n  - name: d\n    digital: true\n",
			wantErr: "without a strength",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nl, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = Build(nl)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr),
				"error %q should contain %q", err.Error(), tt.wantErr)
		})
	}
}

func TestLoadBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(i2cBus), 0644))

	board, err := LoadBoard(path)
	require.NoError(t, err)
	defer board.Close()
	assert.NotNil(t, board.Wire("sda"))

	_, err = LoadBoard(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
