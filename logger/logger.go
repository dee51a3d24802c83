// Package logger builds the zerolog loggers used by the command line tool.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and output format.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Pretty forces console output. APP_ENV=dev has the same effect.
	Pretty bool
	// Out defaults to os.Stderr; stdout carries the exported timetable.
	Out io.Writer
}

// New returns a logger for the given component at info level. The output
// format is detected via the APP_ENV variable.
func New(component string) zerolog.Logger {
	l, _ := NewWithConfig(component, Config{})
	return l
}

// NewWithConfig returns a logger for the given component. All entries
// carry a component field.
func NewWithConfig(component string, cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty || strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger(), nil
}

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}
