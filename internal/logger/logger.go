package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger and returns it for injection
// into components. Unknown levels fall back to info.
func Init(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	l := zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	log.Logger = l
	return l
}
