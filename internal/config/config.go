// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Frontends the game can run on.
const (
	FrontendTerminal = "terminal"
	FrontendConsole  = "console"
)

// Config holds runtime settings. Command-line flags override these values.
type Config struct {
	Environment string     // "production" switches logs to JSON
	LogLevel    slog.Level // Minimum level written to the log
	LogFile     string     // Log destination; empty discards logs
	Frontend    string     // FrontendTerminal or FrontendConsole
	WorldFile   string     // Optional world JSON replacing the built-in level
	Seed        int64      // Flavor text seed; 0 picks one from the clock
	Telemetry   bool       // Export traces when true
}

// Load reads the configuration from DUNGEONWALK_* environment variables.
func Load() *Config {
	return &Config{
		Environment: getEnv("DUNGEONWALK_ENV", "development"),
		LogLevel:    ParseLogLevel(getEnv("DUNGEONWALK_LOG_LEVEL", "info")),
		LogFile:     getEnv("DUNGEONWALK_LOG_FILE", ""),
		Frontend:    ParseFrontend(getEnv("DUNGEONWALK_FRONTEND", FrontendTerminal)),
		WorldFile:   getEnv("DUNGEONWALK_WORLD_FILE", ""),
		Seed:        getEnvInt64("DUNGEONWALK_SEED", 0),
		Telemetry:   getEnvBool("DUNGEONWALK_TELEMETRY", true),
	}
}

// ParseLogLevel maps a level name to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFrontend normalizes a frontend name, defaulting to the terminal.
func ParseFrontend(name string) string {
	switch strings.ToLower(name) {
	case FrontendConsole, "line", "plain":
		return FrontendConsole
	default:
		return FrontendTerminal
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
