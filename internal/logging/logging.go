// Package logging holds the level shared by every package logger.
package logging

import (
	"log/slog"
	"os"
)

// level controls the log level for all thin loggers.
// Default is LevelInfo, which suppresses Debug messages.
var level = new(slog.LevelVar)

// SetVerbose switches Debug logging on or off.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Verbose reports whether Debug logging is on.
func Verbose() bool {
	return level.Level() <= slog.LevelDebug
}

// New returns a stderr text logger tagged with the component name.
func New(component string) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", component)
}
