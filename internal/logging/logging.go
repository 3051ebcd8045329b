// Package logging opens the studio log file. The TUI owns the terminal, so
// diagnostics go to a file that the activity console and `tail -f` can read.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is a slog.Logger bound to an open log file.
type Logger struct {
	*slog.Logger
	Path  string
	file  *os.File
	level *slog.LevelVar
}

// Open creates the log directory if needed and appends to the file at path.
func Open(path string, level slog.Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	lv := new(slog.LevelVar)
	lv.Set(level)
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lv})
	return &Logger{Logger: slog.New(handler), Path: path, file: f, level: lv}, nil
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
