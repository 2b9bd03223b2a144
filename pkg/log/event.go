package log

import (
	"time"

	"github.com/virtwire/virtwire-go/pkg/wire"
)

// Event is one captured simulation transition.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the capture session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Seq is the 1-based position of the event within its session.
	// Ordering by Seq is authoritative; timestamps may collide.
	Seq uint64 `cbor:"3,keyasint"`

	// Kind is the transition kind (drive, resolve, notify, ...).
	Kind wire.TraceKind `cbor:"4,keyasint"`

	// Wire is the label of the wire involved, if any.
	Wire string `cbor:"5,keyasint,omitempty"`

	// Driver is the label of the driver involved, if any.
	Driver string `cbor:"6,keyasint,omitempty"`

	// Strength of the resolved or driven value.
	Strength wire.Strength `cbor:"7,keyasint"`

	// Mode of the resolved or driven value.
	Mode wire.ValueMode `cbor:"8,keyasint"`

	// Value of the resolved or driven value.
	Value int64 `cbor:"9,keyasint"`

	// Conflict reports whether the wire was in conflict after the
	// transition.
	Conflict bool `cbor:"10,keyasint,omitempty"`
}
