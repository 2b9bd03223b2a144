// Package wire models shared electrical signal lines driven by any
// number of independent drivers.
//
// A Wire holds the value most strongly asserted by its attached
// Drivers. Each driver asserts a DriveValue: a strength from Hi-Z (0,
// undriven) to Supply (7), plus a digital (boolean) or analogue
// (signed integer, e.g. microvolts) value. The strongest driver
// determines both the wire's value and its mode. Equal-strongest
// drivers that disagree on mode or value put the wire into conflict,
// which is observable state rather than an error.
//
// # Change Notification
//
// Listeners registered with Wire.Listen are called when the wire's
// observable state changes: the resolved value or mode changes while
// driven, the wire falls to or rises from Hi-Z, or the wire enters or
// leaves conflict. Two Hi-Z states are never distinct.
//
// # Batched Updates
//
// MultiDrive applies a set of driver updates as one coherent unit.
// Every affected wire is resolved exactly once against the final
// values, and its listeners fire at most once, after all wires in the
// batch have settled. The single-driver methods (Drive, DriveAnalogue,
// DriveHiZ) are one-element MultiDrive calls, so their semantics are
// identical. Use batches for protocols that assert several lines
// together (address plus data, for example).
//
// # Mixed Analogue and Digital
//
// Each wire has an intrinsic value, the analogue magnitude equated
// with digital true (default 3.3e6 microvolts). A wire driven
// analogue senses digital true at or above half the intrinsic value;
// a wire driven digital true senses analogue as the intrinsic value,
// digital false as zero.
//
// # Execution Model
//
// The package is single-threaded and synchronous: every operation
// runs to completion on the caller's stack, including listener
// callbacks. A callback may drive other drivers, but those effects
// become visible only to subsequent update calls, never to the
// in-progress dispatch.
//
// In every operation a nil *Wire or nil *Driver is a valid target: it
// senses as Hi-Z without conflict and trivially sinks drive, attach,
// and listen operations.
package wire
