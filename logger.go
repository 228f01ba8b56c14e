package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger builds the process logger. The terminal frontend owns the
// screen, so without a log file nothing is written in that mode.
func newLogger(cfg Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	lvl, err := cfg.level()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), f.Close, nil
	case cfg.Term:
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	default:
		return slog.New(slog.NewTextHandler(stderr, opts)), func() error { return nil }, nil
	}
}
