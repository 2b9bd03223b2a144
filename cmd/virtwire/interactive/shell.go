// Package interactive provides the interactive command-line shell
// for the virtwire workbench.
package interactive

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/virtwire/virtwire-go/pkg/netlist"
	"github.com/virtwire/virtwire-go/pkg/wire"
)

// Shell holds the interactive session state: named wires and drivers
// plus the set of watched wires.
type Shell struct {
	rl *readline.Instance

	wires   map[string]*wire.Wire
	drivers map[string]*wire.Driver
	watched map[string]bool
}

// New creates a new interactive shell.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "virtwire> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{
		rl:      rl,
		wires:   make(map[string]*wire.Wire),
		drivers: make(map[string]*wire.Driver),
		watched: make(map[string]bool),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline
// input. Use this for log output to avoid interfering with the prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// LoadNetlist builds the named netlist file into the session.
func (s *Shell) LoadNetlist(path string) error {
	board, err := netlist.LoadBoard(path)
	if err != nil {
		return err
	}
	for _, name := range board.WireNames() {
		s.wires[name] = board.Wire(name)
	}
	for _, name := range board.DriverNames() {
		s.drivers[name] = board.Driver(name)
	}
	return nil
}

// Run starts the interactive command loop. It returns when the user
// quits or input is exhausted.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "wire":
			s.cmdWire(args)

		case "driver":
			s.cmdDriver(args)

		case "attach":
			s.cmdAttach(args, true)

		case "detach":
			s.cmdAttach(args, false)

		case "drive", "d":
			s.cmdDrive(args)

		case "hiz", "z":
			s.cmdHiZ(args)

		case "sense", "s":
			s.cmdSense(args)

		case "bus":
			s.cmdBus(args)

		case "watch":
			s.cmdWatch(args, true)

		case "unwatch":
			s.cmdWatch(args, false)

		case "list", "ls":
			s.cmdList()

		case "load":
			s.cmdLoad(args)

		case "quit", "exit", "q":
			return

		default:
			s.printf("Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.rl.Stdout(), format, args...)
}

func (s *Shell) printHelp() {
	s.printf(`Commands:
  wire NAME [INTRINSIC]          create a wire
  driver NAME [WIRE...]          create a driver, optionally attached
  attach DRIVER WIRE             attach a driver to a wire
  detach DRIVER WIRE             detach a driver from a wire
  drive DRIVER STRENGTH VALUE [DRIVER STRENGTH VALUE ...]
                                 drive one or more drivers as a batch;
                                 VALUE is 0, 1, z, or a<microvolts>
  hiz DRIVER                     release a driver to hi-z
  sense WIRE                     show a wire's resolved state
  bus WIRE...                    combined bitmask of up to 32 wires
  watch WIRE / unwatch WIRE      print wire changes as they happen
  list                           show all wires and drivers
  load FILE                      build a YAML netlist into the session
  quit                           leave the shell
`)
}

func (s *Shell) lookupWire(name string) *wire.Wire {
	w, ok := s.wires[name]
	if !ok {
		s.printf("No such wire: %s\n", name)
		return nil
	}
	return w
}

func (s *Shell) lookupDriver(name string) *wire.Driver {
	d, ok := s.drivers[name]
	if !ok {
		s.printf("No such driver: %s\n", name)
		return nil
	}
	return d
}

func (s *Shell) cmdWire(args []string) {
	if len(args) < 1 || len(args) > 2 {
		s.printf("Usage: wire NAME [INTRINSIC]\n")
		return
	}
	name := args[0]
	if _, exists := s.wires[name]; exists {
		s.printf("Wire %s already exists\n", name)
		return
	}
	w := wire.NewWire()
	w.SetLabel(name)
	if len(args) == 2 {
		intrinsic, err := strconv.Atoi(args[1])
		if err != nil {
			s.printf("Bad intrinsic value: %v\n", err)
			return
		}
		w.SetIntrinsic(intrinsic)
	}
	s.wires[name] = w
}

func (s *Shell) cmdDriver(args []string) {
	if len(args) < 1 {
		s.printf("Usage: driver NAME [WIRE...]\n")
		return
	}
	name := args[0]
	if _, exists := s.drivers[name]; exists {
		s.printf("Driver %s already exists\n", name)
		return
	}
	for _, wn := range args[1:] {
		if s.lookupWire(wn) == nil {
			return
		}
	}
	d := wire.NewDriver(nil)
	d.SetLabel(name)
	for _, wn := range args[1:] {
		s.wires[wn].Attach(d)
	}
	s.drivers[name] = d
}

func (s *Shell) cmdAttach(args []string, attach bool) {
	if len(args) != 2 {
		s.printf("Usage: attach|detach DRIVER WIRE\n")
		return
	}
	d := s.lookupDriver(args[0])
	w := s.lookupWire(args[1])
	if d == nil || w == nil {
		return
	}
	if attach {
		w.Attach(d)
	} else {
		w.Detach(d)
	}
}

// parseDriveValue parses a drive value token: "0" or "1" for digital,
// "z" for hi-z, or "a<number>" for analogue microvolts.
func parseDriveValue(token string) (mode wire.ValueMode, value int, hiZ bool, err error) {
	switch {
	case token == "z":
		return 0, 0, true, nil
	case token == "0":
		return wire.ModeDigital, 0, false, nil
	case token == "1":
		return wire.ModeDigital, 1, false, nil
	case strings.HasPrefix(token, "a"):
		value, err = strconv.Atoi(token[1:])
		if err != nil {
			return 0, 0, false, fmt.Errorf("bad analogue value %q", token)
		}
		return wire.ModeAnalogue, value, false, nil
	}
	return 0, 0, false, fmt.Errorf("bad value %q (use 0, 1, z, or a<uV>)", token)
}

// parseDrives parses DRIVER STRENGTH VALUE triples into a batch.
func (s *Shell) parseDrives(args []string) ([]wire.Drive, error) {
	if len(args) == 0 || len(args)%3 != 0 {
		return nil, fmt.Errorf("expected DRIVER STRENGTH VALUE triples")
	}
	var drives []wire.Drive
	for i := 0; i < len(args); i += 3 {
		d, ok := s.drivers[args[i]]
		if !ok {
			return nil, fmt.Errorf("no such driver: %s", args[i])
		}
		strength, err := wire.ParseStrength(args[i+1])
		if err != nil {
			return nil, err
		}
		mode, value, hiZ, err := parseDriveValue(args[i+2])
		if err != nil {
			return nil, err
		}
		if hiZ {
			strength = wire.HiZ
		}
		drives = append(drives, wire.Drive{
			Driver:   d,
			Strength: strength,
			Mode:     mode,
			Value:    value,
		})
	}
	return drives, nil
}

func (s *Shell) cmdDrive(args []string) {
	drives, err := s.parseDrives(args)
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	wire.MultiDrive(drives)
}

func (s *Shell) cmdHiZ(args []string) {
	if len(args) != 1 {
		s.printf("Usage: hiz DRIVER\n")
		return
	}
	if d := s.lookupDriver(args[0]); d != nil {
		d.DriveHiZ()
	}
}

// formatWire renders a wire's resolved state, e.g. "1 (pull)",
// "3300000uV (strong)", "hi-z", or "CONFLICT 0 (weak)".
func formatWire(w *wire.Wire) string {
	if w.IsHiZ() {
		return "hi-z"
	}
	var sb strings.Builder
	if w.Conflicted() {
		sb.WriteString("CONFLICT ")
	}
	avalue, strength := w.SenseAnalogue()
	dvalue, _ := w.Sense()
	digit := "0"
	if dvalue {
		digit = "1"
	}
	fmt.Fprintf(&sb, "%s/%duV (%s)", digit, avalue, strength)
	return sb.String()
}

func (s *Shell) cmdSense(args []string) {
	if len(args) != 1 {
		s.printf("Usage: sense WIRE\n")
		return
	}
	if w := s.lookupWire(args[0]); w != nil {
		s.printf("%s: %s\n", args[0], formatWire(w))
	}
}

func (s *Shell) cmdBus(args []string) {
	if len(args) == 0 {
		s.printf("Usage: bus WIRE...\n")
		return
	}
	wires := make([]*wire.Wire, len(args))
	for i, wn := range args {
		if wires[i] = s.lookupWire(wn); wires[i] == nil {
			return
		}
	}
	value, weakest := wire.MultiSense(wires)
	s.printf("value=%#b weakest=%s\n", value, weakest)
}

// watchHandler prints a wire change; opaque is the wire's name.
func (s *Shell) watchHandler(opaque any, w *wire.Wire) {
	s.printf("%s -> %s\n", opaque.(string), formatWire(w))
}

func (s *Shell) cmdWatch(args []string, watch bool) {
	if len(args) != 1 {
		s.printf("Usage: watch|unwatch WIRE\n")
		return
	}
	name := args[0]
	w := s.lookupWire(name)
	if w == nil {
		return
	}
	if watch == s.watched[name] {
		return
	}
	if watch {
		w.Listen(s.watchHandler, name)
	} else {
		w.Unlisten(s.watchHandler, name)
	}
	s.watched[name] = watch
}

func (s *Shell) cmdList() {
	wireNames := make([]string, 0, len(s.wires))
	for name := range s.wires {
		wireNames = append(wireNames, name)
	}
	sort.Strings(wireNames)
	for _, name := range wireNames {
		s.printf("wire   %-12s %s\n", name, formatWire(s.wires[name]))
	}

	driverNames := make([]string, 0, len(s.drivers))
	for name := range s.drivers {
		driverNames = append(driverNames, name)
	}
	sort.Strings(driverNames)
	for _, name := range driverNames {
		v := s.drivers[name].Value()
		out := "hi-z"
		if v.Strength != wire.HiZ {
			out = fmt.Sprintf("%s %d (%s)", v.Mode, v.Value, v.Strength)
		}
		s.printf("driver %-12s %s\n", name, out)
	}
}

func (s *Shell) cmdLoad(args []string) {
	if len(args) != 1 {
		s.printf("Usage: load FILE\n")
		return
	}
	if err := s.LoadNetlist(args[0]); err != nil {
		s.printf("Load failed: %v\n", err)
		return
	}
	s.cmdList()
}
