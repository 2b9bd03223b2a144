package wire

// ValueMode selects how a DriveValue's Value field is interpreted.
type ValueMode uint8

const (
	// ModeDigital interprets Value as a boolean (0 or 1).
	ModeDigital ValueMode = 0

	// ModeAnalogue interprets Value as a signed physical quantity,
	// conventionally microvolts.
	ModeAnalogue ValueMode = 1
)

// String returns the mode name.
func (m ValueMode) String() string {
	switch m {
	case ModeDigital:
		return "digital"
	case ModeAnalogue:
		return "analogue"
	}
	return "unknown"
}

// DefaultIntrinsic is the default intrinsic value of a new wire:
// the analogue magnitude equated with digital true, 3.3e6 uV.
const DefaultIntrinsic = 3300000

// DriveValue is the value asserted by one driver: a strength plus a
// mode-tagged value. When Strength is HiZ, Mode and Value are
// meaningless and ignored by arbitration. In digital mode Value must
// be 0 or 1.
type DriveValue struct {
	Strength Strength
	Mode     ValueMode
	Value    int
}

// hiZValue is the canonical undriven value. Drivers start here and
// DriveHiZ returns here, so the no-change test in MultiDrive compares
// equal for repeated Hi-Z drives.
var hiZValue = DriveValue{Strength: HiZ, Mode: ModeDigital, Value: 0}
