package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv         string
	DBPath         string
	DBDriver       string
	RedisAddr      string
	HTTPPort       int
	AdminUser      string
	AdminPassword  string
	RosterBaseURL  string
	RosterAPIKey   string
	RosterTable    string
	RosterCacheTTL time.Duration
	CORSOrigins    string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	portStr := getEnv("HTTP_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 8080
	}

	ttlStr := getEnv("ROSTER_CACHE_TTL", "10m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 10 * time.Minute
	}

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		DBPath:         getEnv("DB_PATH", "./data/rushvote.db?_foreign_keys=on"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite3"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:       port,
		AdminUser:      getEnv("ADMIN_USER", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "changeme"),
		RosterBaseURL:  getEnv("ROSTER_BASE_URL", "https://api.airtable.com/v0"),
		RosterAPIKey:   getEnv("ROSTER_API_KEY", ""),
		RosterTable:    getEnv("ROSTER_TABLE", "Applicants"),
		RosterCacheTTL: ttl,
		// Wildcards are rejected by the CORS layer because the admin
		// session rides on cookies, so the default names the local UI.
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
