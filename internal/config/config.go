package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath           string
	ServerPort       string
	LogLevel         string
	PipelineWorkers  int
	CricsheetFeedURL string
}

// Load runs before the leveled logger exists, so it logs through a plain
// bootstrap logger.
func Load() (*Config, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:           getEnv("DB_PATH", "cricket.db"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PipelineWorkers:  getEnvInt("PIPELINE_WORKERS", 8, logger),
		CricsheetFeedURL: getEnv("CRICSHEET_FEED_URL", "https://cricsheet.org/downloads/all_json.zip"),
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("pipeline_workers", cfg.PipelineWorkers).
		Str("cricsheet_feed_url", cfg.CricsheetFeedURL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int, logger zerolog.Logger) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		logger.Warn().Str("key", key).Str("value", v).Int("fallback", fallback).Msg("invalid integer env var")
		return fallback
	}
	return n
}

var Module = fx.Provide(Load)
