// Package log builds the process logger from the harness configuration.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/spbench/bench"
)

type Logger = zerolog.Logger

// NewLogger writes to stderr so that stdout stays free for results.
func NewLogger(cfg bench.Config) Logger {
	return New(os.Stderr, cfg.Logging.Level, cfg.Logging.Pretty)
}

// New builds a timestamped logger on w. Unknown levels fall back to info.
func New(w io.Writer, level string, pretty bool) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
