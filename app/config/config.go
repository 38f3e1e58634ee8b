package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the annotate service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseHost     string `env:"DB_HOST" default:"annotate-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"annotate_db"`
	DatabaseUser     string `env:"DB_USER" default:"annotate_user"`
	DatabasePassword string `env:"DB_PASSWORD"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"prefer"`

	// Search index
	MeilisearchHost    string        `env:"MEILISEARCH_HOST" required:"true"`
	MeilisearchAPIKey  string        `env:"MEILISEARCH_API_KEY"`
	MeilisearchIndex   string        `env:"MEILISEARCH_INDEX" default:"annotations"`
	MeilisearchTimeout time.Duration `env:"MEILISEARCH_TIMEOUT" default:"15s"`
	EnrichLanguages    []string      `env:"ENRICH_LANGUAGES" default:"en"`

	// Events
	RedisURL         string `env:"REDIS_URL"`
	AnnotationStream string `env:"ANNOTATION_STREAM" default:"annotate:events"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" default:"40"`

	// Catalog seed file applied at startup when set
	CatalogFile string `env:"CATALOG_FILE"`

	// Features
	EnableOTel    bool `env:"OTEL_ENABLED" default:"false"`
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}
	var err error

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	if err := loadDatabase(config); err != nil {
		return nil, err
	}

	// Search index configuration
	config.MeilisearchHost = os.Getenv("MEILISEARCH_HOST")
	if config.MeilisearchHost == "" {
		return nil, fmt.Errorf("MEILISEARCH_HOST is required")
	}
	config.MeilisearchAPIKey, err = getSecret("MEILISEARCH_API_KEY")
	if err != nil {
		return nil, err
	}
	config.MeilisearchIndex = getEnvOrDefault("MEILISEARCH_INDEX", "annotations")
	config.MeilisearchTimeout, err = time.ParseDuration(getEnvOrDefault("MEILISEARCH_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEILISEARCH_TIMEOUT: %w", err)
	}
	config.EnrichLanguages = splitList(getEnvOrDefault("ENRICH_LANGUAGES", "en"))

	// Event configuration
	config.RedisURL = os.Getenv("REDIS_URL")
	config.AnnotationStream = getEnvOrDefault("ANNOTATION_STREAM", "annotate:events")

	// Rate limiting
	config.RateLimitRPS, err = strconv.ParseFloat(getEnvOrDefault("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	config.RateLimitBurst, err = strconv.Atoi(getEnvOrDefault("RATE_LIMIT_BURST", "40"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	config.CatalogFile = os.Getenv("CATALOG_FILE")

	// Feature flags
	config.EnableOTel = getBoolEnv("OTEL_ENABLED", false)
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadDatabase reads only the log level and the database settings. Used by
// the commands that touch nothing but PostgreSQL.
func LoadDatabase() (*Config, error) {
	config := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
	if err := loadDatabase(config); err != nil {
		return nil, err
	}
	return config, nil
}

func loadDatabase(c *Config) error {
	var err error
	c.DatabaseURL = os.Getenv("DATABASE_URL")
	c.DatabaseHost = getEnvOrDefault("DB_HOST", "annotate-postgres")
	c.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	c.DatabaseName = getEnvOrDefault("DB_NAME", "annotate_db")
	c.DatabaseUser = getEnvOrDefault("DB_USER", "annotate_user")
	c.DatabasePassword, err = getSecret("DB_PASSWORD")
	if err != nil {
		return err
	}
	c.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "prefer")
	if c.DatabaseURL == "" && c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_URL or DB_PASSWORD is required")
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Check port range (1-65535)
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if u, err := url.Parse(c.MeilisearchHost); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid MEILISEARCH_HOST: %s", c.MeilisearchHost)
	}

	if c.MeilisearchIndex == "" {
		return fmt.Errorf("MEILISEARCH_INDEX must not be empty")
	}

	if c.MeilisearchTimeout < time.Second {
		return fmt.Errorf("meilisearch timeout must be at least 1s, got: %v", c.MeilisearchTimeout)
	}

	if len(c.EnrichLanguages) == 0 {
		return fmt.Errorf("ENRICH_LANGUAGES must name at least one language")
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit must be positive, got rps=%v burst=%d", c.RateLimitRPS, c.RateLimitBurst)
	}

	return nil
}

// DSN returns DATABASE_URL, or a connection string built from the DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DatabaseUser, c.DatabasePassword),
		Host:     c.DatabaseHost + ":" + c.DatabasePort,
		Path:     "/" + c.DatabaseName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DatabaseSSLMode),
	}
	return u.String()
}

// EventsEnabled reports whether annotation events are published.
func (c *Config) EventsEnabled() bool {
	return c.RedisURL != ""
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getSecret reads key, falling back to the file named by key_FILE.
func getSecret(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	path := os.Getenv(key + "_FILE")
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s_FILE: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
