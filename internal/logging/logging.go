// Package logging holds the process-wide logger shared by the bwd
// packages.
//
// The default logger discards everything through a handler whose
// Enabled always returns false, so disabled logging costs nothing on
// the pixel paths. The root package exposes Set/Logger publicly;
// internal packages read the logger from here to avoid an import
// cycle.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler silently discards all log records. Enabled returns false
// so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNopLogger creates a logger that silently discards all output.
func NewNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(NewNopLogger())
}

// Set atomically replaces the active logger. Pass nil to restore the
// default silent behavior. Safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
