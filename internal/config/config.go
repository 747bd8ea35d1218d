package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port string

	// Sessions
	TokenTTL time.Duration

	// Database
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		TokenTTL:   time.Duration(getEnvInt("TOKEN_TTL", 60*60*24)) * time.Second,
		PGHost:     getEnv("PG_HOST", "127.0.0.1"),
		PGPort:     getEnv("PG_PORT", "5431"),
		PGUser:     getEnv("PG_USER", "application"),
		PGPassword: getEnv("PG_PASSWORD", "application"),
		PGDatabase: getEnv("PG_DB", "adboard"),
	}

	return cfg, nil
}

// DatabaseDSN builds the postgres connection URL from the PG_* settings.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
