package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig carries the process-wide settings. CLI flags override these
// values; the environment only supplies defaults.
type AppConfig struct {
	// DataFile is the default JSON weather data file.
	DataFile string

	// Port the HTTP API listens on in serve mode.
	Port string

	// ReloadInterval controls how often serve mode re-reads the data
	// file. Zero disables reloading.
	ReloadInterval time.Duration

	// AppEnv selects the log handler ("dev" gets the pretty one).
	AppEnv string

	// LogLevel is the minimum level emitted.
	LogLevel slog.Level
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &AppConfig{
		DataFile: os.Getenv("WEATHER_DATA_FILE"),
		Port:     getenvDefault("PORT", "8080"),
		AppEnv:   getenvDefault("APP_ENV", "dev"),
	}

	intervalStr := getenvDefault("RELOAD_INTERVAL", "0")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RELOAD_INTERVAL: %w", err)
	}
	if interval < 0 {
		return nil, fmt.Errorf("invalid RELOAD_INTERVAL: must not be negative")
	}
	cfg.ReloadInterval = interval

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL: %q", s)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
