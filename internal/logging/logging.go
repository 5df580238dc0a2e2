// Package logging builds the zerolog logger shared by the interface, the
// session driver and the CLI. Logs go to a file because the terminal
// belongs to the interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// SourceField names the component that emitted an entry.
const SourceField = "src"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New opens path for appending and returns a logger writing JSON lines to
// it. An empty path yields a disabled logger.
func New(path, level string) (zerolog.Logger, io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewNop(), nopCloser{}, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return NewNop(), nopCloser{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return NewNop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return NewNop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	return NewWriter(file, lvl), file, nil
}

// NewWriter returns a logger writing to w at the given level.
func NewWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewNop returns a logger that discards everything.
func NewNop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel resolves a level name; empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str(SourceField, name).Logger()
}
