package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// IDGenerator produces the per-invocation id used to correlate log lines
// with the report's trace_id.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 invocation ids.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// newLogger builds the stderr text logger. Unknown levels fall back to warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
