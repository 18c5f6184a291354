package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-descent/internal/storage"
)

// newLogger opens the log file. The game owns the terminal, so logs never go
// to stderr; on any failure logging is discarded.
func newLogger(path string, verbose bool) (*log.Logger, func()) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "descent",
		Level:           level,
	}

	discard := func() (*log.Logger, func()) {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}

	if path == "" {
		return discard()
	}
	path, err := storage.ExpandPath(path)
	if err != nil {
		return discard()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard()
	}

	return log.NewWithOptions(f, opts), func() { f.Close() }
}
