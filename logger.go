package gfx2d

import (
	"log/slog"
	"sync/atomic"
)

var (
	discard = slog.New(slog.DiscardHandler)
	current atomic.Pointer[slog.Logger]
)

// SetLogger routes diagnostics from gfx2d and the OpenGL backend to l.
// A nil l silences them again, which is also the state at startup.
//
// Errors carry shader info logs. Warnings mark skipped frames and rejected
// parameter values. Info notes programs and pipelines coming up, and debug
// traces each frame step.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or one that discards everything.
// Safe for concurrent use.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discard
}
