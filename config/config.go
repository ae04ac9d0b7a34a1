package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT configuration
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Upstream recipe provider
	MealDBBaseURL   string
	ProviderTimeout time.Duration

	// CORS configuration
	CORSOrigins []string
}

// LoadConfig builds a Config from environment variables, falling back to
// development defaults for everything except the JWT secret.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "recipe_finder"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		JWTSecret:     os.Getenv("JWT_SECRET_KEY"),
		MealDBBaseURL: getEnv("THEMEALDB_BASE_URL", "https://www.themealdb.com/api/json/v1/1"),

		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"), ","),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is required")
	}

	var err error
	if cfg.AccessTokenTTL, err = getDuration("JWT_ACCESS_TOKEN_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = getDuration("JWT_REFRESH_TOKEN_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeout, err = getDuration("PROVIDER_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
