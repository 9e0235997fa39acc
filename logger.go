package bwd

import (
	"log/slog"

	"github.com/bwdraw/bwd/internal/logging"
)

// SetLogger configures the logger for bwd and all its sub-packages.
// By default, bwd produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by bwd:
//   - [slog.LevelDebug]: internal diagnostics (snapshot allocation,
//     dirty-box refresh spans, resample task fan-out)
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	bwd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by bwd.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
