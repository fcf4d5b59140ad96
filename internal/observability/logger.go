package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger builds a console-writer zerolog.Logger tagged with app at
// the given level, installs it as the package-level log.Logger, and
// returns it. internal/logging calls this with its own level/timestamp/
// color decisions rather than constructing a zerolog.Logger itself.
func InitLogger(app string, level zerolog.Level, withTimestamp, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, NoColor: noColor}
	if withTimestamp {
		output.TimeFormat = time.RFC3339
	}
	logger := zerolog.New(output).Level(level).With().Str("app", app).Logger()
	if withTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	log.Logger = logger
	return logger
}
