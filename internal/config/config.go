package config

import (
	"fmt"
	"os"
	"strconv"

	"aacboard-backend/pkg/logger"
)

// Config holds the whole application configuration.
// Populated from environment variables, with defaults that make the
// binary run out of the box on a single device.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Session SessionConfig
	Board   BoardConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type StorageConfig struct {
	// Path is the SQLite database file. Board state and asset blobs
	// live in the same file so a single copy backs up the device.
	Path string

	// BusyTimeoutMS guards interleaved writers on the same file.
	BusyTimeoutMS int
}

type SessionConfig struct {
	Secret string
	// TTLSeconds is the settings-session deadline. The source behavior
	// is a fixed 30 seconds.
	TTLSeconds int
	// BcryptCost for the board password hash.
	BcryptCost int
}

type BoardConfig struct {
	// DefaultBackground is used when a page and its whole ancestor
	// chain define no explicit background color.
	DefaultBackground string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "AAC Board API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			Path:          getEnv("STORAGE_PATH", "aacboard.db"),
			BusyTimeoutMS: getEnvInt("STORAGE_BUSY_TIMEOUT_MS", 5000),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "change-me-in-production"),
			TTLSeconds: getEnvInt("SESSION_TTL_SECONDS", 30),
			BcryptCost: getEnvInt("SESSION_BCRYPT_COST", 12),
		},
		Board: BoardConfig{
			DefaultBackground: getEnv("BOARD_DEFAULT_BACKGROUND", "#C3B1E1"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH must not be empty")
	}
	if c.Session.TTLSeconds <= 0 {
		return fmt.Errorf("SESSION_TTL_SECONDS must be positive")
	}
	if c.App.Environment == "production" && c.Session.Secret == "change-me-in-production" {
		logger.Warn("SESSION_SECRET not set, using insecure default", map[string]interface{}{
			"environment": c.App.Environment,
		})
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
