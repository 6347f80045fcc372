package core

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records; Enabled returns false so callers skip formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NopLogger returns a logger that silently discards all output.
func NopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(NopLogger())
}

// SetLogger configures the logger shared by the engine packages.
// By default the engine produces no log output. Pass nil to restore that.
//
//	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
