package commands

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// newLogger creates the console logger. Timestamps are formatted as
// "HH:MM:SS.ms".
func newLogger(w io.Writer, verbose bool) *charmlog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// slogger exposes l as an slog.Logger for the library packages.
func slogger(l *charmlog.Logger) *slog.Logger {
	return slog.New(l)
}
