package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger builds the process logger. Records go to logFile when set,
// to stderr in headless mode, and nowhere otherwise since the TUI owns the
// terminal. The returned close function is always non-nil.
func newLogger(logFile, level string, headless bool, stderr io.Writer) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	opts := &slog.HandlerOptions{Level: lvl}
	nop := func() error { return nil }

	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), f.Close, nil
	case headless:
		return slog.New(slog.NewTextHandler(stderr, opts)), nop, nil
	default:
		return slog.New(slog.DiscardHandler), nop, nil
	}
}
