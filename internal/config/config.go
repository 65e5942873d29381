package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store backends
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// DefaultAllowedOrigins are the dashboard frontends
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://valodash.vercel.app",
	"https://valodash-jonie-n.vercel.app",
}

type Config struct {
	// Server
	Port     int
	Env      string
	LogLevel string

	// CORS
	AllowedOrigins []string

	// Storage
	StoreBackend string
	DataDir      string
	RedisURL     string
	PostgresURL  string
}

// Load loads configuration from environment variables.
// It returns an error if the selected store backend is missing its connection URL.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnvInt("PORT", 3001),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendFile)),
		DataDir:      getEnv("DATA_DIR", "data"),
		RedisURL:     os.Getenv("REDIS_URL"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
	}

	// CORS
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}

	switch cfg.StoreBackend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("missing required environment variable: REDIS_URL")
		}
	case BackendPostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("missing required environment variable: POSTGRES_URL")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// Addr returns the listen address for Port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
