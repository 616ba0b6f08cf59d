// Package applog builds the process's structured logger (ambient stack,
// SPEC_FULL.md §3). Stream-fatal and record-level errors are logged
// through it to stderr, which it serializes behind a dedicated mutex so a
// slow error write never blocks the hot output path (spec.md §5).
package applog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// lockedWriter serializes writes from concurrent workers, matching
// spec.md §5's "stderr uses a separate mutex" requirement.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// Logger wraps a zerolog.Logger for record-level/stream-fatal errors and a
// Summary writer that always emits regardless of quiet mode — the summary
// is required output (spec.md §6), not "human-readable error text."
type Logger struct {
	zerolog.Logger
	summary io.Writer
}

// New builds a Logger writing to stderr under one dedicated mutex. quiet
// suppresses human-readable error logs (spec.md §7) but never the summary.
func New(quiet bool) Logger {
	lw := &lockedWriter{w: os.Stderr}
	lvl := zerolog.InfoLevel
	if quiet {
		lvl = zerolog.Disabled
	}
	return Logger{
		Logger:  zerolog.New(lw).Level(lvl).With().Timestamp().Logger(),
		summary: lw,
	}
}

// Summary writes the run summary as a single JSON line to stderr,
// bypassing the logger's level filter so it survives quiet mode.
func (l Logger) Summary(obj []byte) error {
	_, err := l.summary.Write(append(obj, '\n'))
	return err
}
