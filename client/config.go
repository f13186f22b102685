package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings read from MANGO_CLIENT_* environment variables.
// A zero Timeout keeps the timeout of the underlying http.Client.
type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost:8000/api"`
	Timeout time.Duration `envconfig:"TIMEOUT"`
	Debug   bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig parses the MANGO_CLIENT_ environment, e.g. MANGO_CLIENT_BASE_URL.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("MANGO_CLIENT", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return cfg, nil
}

// Options converts the config into construction options.
func (c Config) Options() []Option {
	var opts []Option
	if c.Timeout > 0 {
		opts = append(opts, WithHTTPTimeout(c.Timeout))
	}
	if c.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts
}

// NewFromEnv builds a Client from LoadConfig. The environment-derived options
// run after opts, so MANGO_CLIENT_TIMEOUT also applies to a client passed
// with WithHTTPClient.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, cfg.Options()...)
	return New(cfg.BaseURL, all...)
}
