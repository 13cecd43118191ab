package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config collects every environment-driven setting the service needs.
type Config struct {
	Port int

	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// The alternate backend takes precedence over the remote store when
	// enabled. It is on unless USE_BACKEND=false, and requires a base URL.
	BackendEnabled bool
	BackendBaseURL string

	AccessTokenSecret string

	TemplateCatalogPath string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                intEnv("PORT", 8080),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              getenv("DB_PORT", "5432"),
		DBUsername:          os.Getenv("DB_USERNAME"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBDatabase:          os.Getenv("DB_DATABASE"),
		RedisAddr:           getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             intEnv("REDIS_DB", 0),
		BackendBaseURL:      os.Getenv("BACKEND_URL"),
		AccessTokenSecret:   os.Getenv("ACCESS_TOKEN_SECRET"),
		TemplateCatalogPath: os.Getenv("TEMPLATE_CATALOG_PATH"),
	}
	cfg.BackendEnabled = os.Getenv("USE_BACKEND") != "false" && cfg.BackendBaseURL != ""

	if cfg.DBHost == "" {
		return nil, fmt.Errorf("DB_HOST environment variable is required")
	}
	if cfg.DBUsername == "" {
		return nil, fmt.Errorf("DB_USERNAME environment variable is required")
	}
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE environment variable is required")
	}

	return cfg, nil
}

// DatabaseURL builds the postgres:// DSN, encoding the credentials.
func (c *Config) DatabaseURL() string {
	userInfo := url.UserPassword(c.DBUsername, c.DBPassword)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		c.DBHost,
		c.DBPort,
		url.PathEscape(c.DBDatabase),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
