// Package logging builds the zerolog logger used across the Cinna backend.
// zerolog writes structured, levelled log lines; the console writer keeps them
// human-readable during development while staying machine-parseable fields.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New constructs a console logger at the given level name ("debug", "info",
// "warn", ...). An unrecognised or empty name falls back to info rather than
// failing — a bad LOG_LEVEL should never stop the server from starting.
func New(levelName string) zerolog.Logger {
	level := zerolog.InfoLevel
	if levelName != "" {
		if parsed, err := zerolog.ParseLevel(levelName); err == nil {
			level = parsed
		}
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		With().
		Timestamp().
		Logger().
		Level(level)
}
