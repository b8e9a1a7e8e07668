package app

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Name is the app field attached to every log record.
const Name = "macconv"

// NewLogger returns a console logger on out. Only warnings and above are
// written unless debug is set.
func NewLogger(out io.Writer, debug bool) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", Name).Logger()
}
