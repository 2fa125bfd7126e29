// Package logging provides the process-wide logger. The engine, compiler,
// and enumerator stay pure and return errors instead of logging; only the
// CLI, workers, and supervisor write log lines.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the shared console logger used by cmd/totalmapper, the
// per-device workers, and the supervisor.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

// SetLevel adjusts the global minimum level, e.g. for a --verbose flag.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
