package log

import (
	"context"
	"log/slog"

	"github.com/virtwire/virtwire-go/pkg/wire"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to watch wire activity in the
// console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level, except the
// reentrant-dispatch diagnostic, which logs at Warn.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.Uint64("seq", event.Seq),
		slog.String("kind", event.Kind.String()),
	}

	if event.Wire != "" {
		attrs = append(attrs, slog.String("wire", event.Wire))
	}
	if event.Driver != "" {
		attrs = append(attrs, slog.String("driver", event.Driver))
	}

	switch event.Kind {
	case wire.TraceDrive, wire.TraceResolve, wire.TraceNotify:
		attrs = append(attrs,
			slog.String("strength", event.Strength.String()),
			slog.String("mode", event.Mode.String()),
			slog.Int64("value", event.Value),
		)
		if event.Conflict {
			attrs = append(attrs, slog.Bool("conflict", true))
		}
	}

	level := slog.LevelDebug
	if event.Kind == wire.TraceReentrant {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "wire trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
