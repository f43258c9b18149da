// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hance08/teller/internal/config"
	"github.com/rs/zerolog"
)

// New returns a logger configured from cfg and a function that releases
// the log file, if one was opened.
func New(cfg config.LogConfig) (zerolog.Logger, func(), error) {
	level := zerolog.WarnLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
		}
		level = parsed
	}

	var (
		output  io.Writer = os.Stderr
		cleanup           = func() {}
	)

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("can not create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("can not open log file: %w", err)
		}
		output = f
		cleanup = func() { _ = f.Close() }
	}

	switch cfg.Format {
	case "", "console":
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: cfg.File != ""}
	case "json":
	default:
		cleanup()
		return zerolog.Nop(), func() {}, fmt.Errorf("invalid log format '%s' (must be console or json)", cfg.Format)
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, cleanup, nil
}
