package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the ads service.
// Environment variables are parsed from the MANGO_BACKEND_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort    int      `envconfig:"HTTP_PORT" default:"8000"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost,http://localhost:8080,http://localhost:3000,http://localhost:5173"`

	// Storage: sqlite (default) or postgres
	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/ads.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Health
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthCheckTimeoutSeconds int `envconfig:"HEALTH_CHECK_TIMEOUT_SECONDS" default:"2"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// ResolveDefaults normalizes DBDriver and rejects unusable combinations.
func (c *Config) ResolveDefaults() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case "", "auto":
		c.DBDriver = "sqlite"
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
	}
	if c.DBDriver == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("DB_DRIVER=sqlite requires SQLITE_PATH")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.HealthIntervalSeconds <= 0 {
		c.HealthIntervalSeconds = 30
	}
	if c.HealthCheckTimeoutSeconds <= 0 {
		c.HealthCheckTimeoutSeconds = 2
	}
	return nil
}

// New creates a new Config by parsing environment variables, after loading
// a .env file from the working directory when one exists.
// Example: MANGO_BACKEND_HTTP_PORT, MANGO_BACKEND_DB_DRIVER
func New(log zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("MANGO_BACKEND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Strs("cors_origins", cfg.CORSOrigins).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Bool("metrics_enabled", cfg.MetricsEnabled).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:               EnvTesting,
		HTTPPort:                  8000,
		CORSOrigins:               []string{"http://localhost:5173"},
		DBDriver:                  "sqlite",
		SQLitePath:                ":memory:",
		HealthIntervalSeconds:     1,
		HealthCheckTimeoutSeconds: 1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
