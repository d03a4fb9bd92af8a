// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkordes/globetrotter/backend/internal/budget"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the log handler: "json" (default) or "text".
	LogFormat string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// AutoMigrate applies pending migrations at startup. Defaults to false.
	AutoMigrate bool

	// Budget holds the per-diem estimates and alert thresholds used by the
	// budget breakdown. Unset keys keep budget.DefaultAssumptions.
	Budget budget.Assumptions
}

const defaultMaxBodyBytes = 1 << 20

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first optional variable that does not parse.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Budget:      budget.DefaultAssumptions(),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}

	var err error
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", defaultMaxBodyBytes); err != nil {
		return Config{}, err
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	if cfg.AutoMigrate, err = getBool("AUTO_MIGRATE", false); err != nil {
		return Config{}, err
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"TRANSPORT_PER_DIEM", &cfg.Budget.TransportPerDiem},
		{"STAY_PER_DIEM", &cfg.Budget.StayPerDiem},
		{"FOOD_PER_DIEM", &cfg.Budget.FoodPerDiem},
		{"BUDGET_HIGH_THRESHOLD", &cfg.Budget.HighThreshold},
		{"BUDGET_MODERATE_THRESHOLD", &cfg.Budget.ModerateThreshold},
	}
	for _, f := range floats {
		if *f.dst, err = getFloat(f.key, *f.dst); err != nil {
			return Config{}, err
		}
	}
	if cfg.Budget.Spread, err = budget.ParseSpreadPolicy(os.Getenv("BUDGET_SPREAD")); err != nil {
		return Config{}, fmt.Errorf("BUDGET_SPREAD: %w", err)
	}
	if err := cfg.Budget.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, v)
	}
	return f, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false, got %q", key, v)
	}
	return b, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
