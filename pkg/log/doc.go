// Package log provides structured trace capture for wire simulations.
//
// This package defines the Logger interface and the Event type for
// recording every state transition in a simulation: drives, wire
// resolutions, notifications, attachments, and diagnostics. It is
// separate from operational logging (slog) - trace capture produces a
// complete machine-readable record suitable for replay and analysis,
// like a logic analyzer dump.
//
// # Basic Usage
//
// Plug a Recorder into the wire package's trace hook:
//
//	// For development: events on the console via slog
//	wire.SetTracer(log.NewRecorder(log.NewSlogAdapter(slog.Default())))
//
//	// For capture: write a binary CBOR stream
//	fl, _ := log.NewFileLogger("run.vtrace")
//	wire.SetTracer(log.NewRecorder(fl))
//
//	// Both at once
//	wire.SetTracer(log.NewRecorder(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	)))
//
// Captured files are replayed with Reader, optionally filtered by
// session, kind, wire label, or time range.
package log
