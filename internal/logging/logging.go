package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a text logger writing to w. debug lowers the level to Debug.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OpenFile returns a logger appending to the file at path. The terminal
// belongs to the TUI, so when the file cannot be opened logs are dropped.
func OpenFile(path string, debug bool) (*slog.Logger, io.Closer) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Discard(), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return Discard(), io.NopCloser(nil)
	}
	return New(f, debug), f
}
