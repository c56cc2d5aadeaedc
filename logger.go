package xbrz

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so callers skip
// building attributes at all.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silent is returned by Logger while no logger is installed.
var silent = slog.New(nopHandler{})

// installed holds the logger passed to SetLogger; nil means silent.
var installed atomic.Pointer[slog.Logger]

// SetLogger routes the debug records of xbrz and xbrzimage to l.
// The packages are silent until it is called; nil silences them again.
// It may be called at any time, including while scalers are running.
//
// Records are emitted at [slog.LevelDebug] when a Scaler is built, when a
// buffered distance table is computed and when ScaleConcurrent splits an
// image. The per-pixel loop never logs.
//
// Example:
//
//	xbrz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	installed.Store(l)
}

// Logger returns the logger set with SetLogger, or a logger that discards
// everything. It is safe for concurrent use.
func Logger() *slog.Logger {
	if l := installed.Load(); l != nil {
		return l
	}
	return silent
}
