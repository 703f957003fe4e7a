package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a structured logger writing to w.
//
// level is one of debug, info, warn or error; anything else means info.
// When pretty is set the output is human readable instead of JSON.
func NewLogger(w io.Writer, level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
