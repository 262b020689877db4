// Package logging builds the zerolog loggers used by the command line.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel accepts zerolog level names; the empty string means info.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return lvl, nil
}

// New returns a human-readable logger on w. Output is colored only when w
// is a terminal.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !IsTerminal(w),
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// Setup builds a logger with New and installs it as the global zerolog logger.
func Setup(w io.Writer, level string) (zerolog.Logger, error) {
	logger, err := New(w, level)
	if err != nil {
		return logger, err
	}

	log.Logger = logger

	return logger, nil
}
