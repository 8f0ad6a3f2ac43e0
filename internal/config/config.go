// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBuilderAPIURL  = "https://cdn.builder.io"
	defaultBuilderTimeout = 10 * time.Second
	defaultLogLevel       = "info"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Builder  BuilderConfig
	Redis    RedisConfig
	Auth     AuthConfig
	LogLevel string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// BuilderConfig contains content API settings.
// An empty APIKey disables the content API entirely.
type BuilderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// RedisConfig contains the optional content cache settings.
// An empty Address disables caching.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// AuthConfig contains session token settings.
type AuthConfig struct {
	Secret string
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	serverHost, err := getRequiredEnv("SERVER_HOST")
	if err != nil {
		return nil, err
	}

	serverPort, err := getRequiredEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}

	dbHost, err := getRequiredEnv("DB_HOST")
	if err != nil {
		return nil, err
	}

	dbPort, err := getRequiredEnv("DB_PORT")
	if err != nil {
		return nil, err
	}

	dbUser, err := getRequiredEnv("DB_USER")
	if err != nil {
		return nil, err
	}

	dbPassword, err := getRequiredEnv("DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	dbName, err := getRequiredEnv("DB_NAME")
	if err != nil {
		return nil, err
	}

	dbSSLMode, err := getRequiredEnv("DB_SSLMODE")
	if err != nil {
		return nil, err
	}

	authSecret, err := getRequiredEnv("AUTH_SECRET")
	if err != nil {
		return nil, err
	}

	builderTimeout, err := getDurationEnv("BUILDER_TIMEOUT", defaultBuilderTimeout)
	if err != nil {
		return nil, err
	}

	redisDB, err := getIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Database: DatabaseConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		Builder: BuilderConfig{
			APIKey:  os.Getenv("NEXT_PUBLIC_BUILDER_API_KEY"),
			BaseURL: getEnv("BUILDER_API_URL", defaultBuilderAPIURL),
			Timeout: builderTimeout,
		},
		Redis: RedisConfig{
			Address:  os.Getenv("REDIS_ADDRESS"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			Secret: authSecret,
		},
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Enabled reports whether a content API key is configured.
func (c *BuilderConfig) Enabled() bool {
	return c.APIKey != ""
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %w", key, err)
	}
	return d, nil
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer in %s: %w", key, err)
	}
	return n, nil
}
