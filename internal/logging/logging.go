// Package logging provides structured logging for oligofs using zerolog.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger *zerolog.Logger

func init() {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger = &l
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Init configures the global logger. If debug is true, the level is
// lowered to Debug. If human is true, output goes through a console
// writer instead of JSON.
func Init(debug bool, human bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var output zerolog.LevelWriter
	if human {
		output = zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}}
	} else {
		output = zerolog.LevelWriterAdapter{Writer: os.Stderr}
	}

	l := zerolog.New(output).With().Timestamp().Logger()
	logger = &l
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}

// WithPhase returns a logger tagged with the pipeline phase it's
// reporting on, e.g. "classify", "crc-gate", "reassemble".
func WithPhase(phase string) *zerolog.Logger {
	l := logger.With().Str("phase", phase).Logger()
	return &l
}

// SetLogger overrides the global logger, for tests.
func SetLogger(l zerolog.Logger) {
	logger = &l
}
