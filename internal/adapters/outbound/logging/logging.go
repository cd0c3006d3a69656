package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger writing to w at the named level.
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Str("component", "zesty").Logger()
}

// NewJSON builds a structured JSON logger.
func NewJSON(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Str("component", "zesty").Logger()
}

// parseLevel maps a config level name to zerolog. Empty or unknown names
// fall back to warn.
func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}
