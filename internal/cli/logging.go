package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger carries diagnostics to stderr. User-facing output goes through
// cmd.OutOrStdout() instead.
var logger = newLogger(os.Stderr, false)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
