package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"cricket-analytics/internal/config"
)

// New builds the process logger at the level named by LOG_LEVEL, falling
// back to info when the value is missing or unrecognized.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := SetLevel(level)
	if err != nil {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unrecognized log level, using info")
	}

	return logger
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

var Module = fx.Provide(New)
