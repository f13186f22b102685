package shardqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups all tunables. Values are taken from environment variables with
// the prefix "MANGO_SEED_". Example: MANGO_SEED_SHARDS=8 MANGO_SEED_QUEUE_SIZE=256.
type Config struct {
	Shards         int           `envconfig:"SHARDS"          default:"4"`
	QueueSize      int           `envconfig:"QUEUE_SIZE"      default:"128"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`

	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"5"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"5s"`

	// ErrorHandler is called after a job finally fails (retries exhausted,
	// non-retryable error or cancelled context). Leave nil if you do not care.
	ErrorHandler func(error) `envconfig:"-"`

	// ShouldRetry decides whether a failed job is attempted again.
	// Nil retries every error up to MaxAttempts.
	ShouldRetry func(error) bool `envconfig:"-"`
}

// LoadConfig populates Config from environment variables (prefix MANGO_SEED_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("MANGO_SEED", &c)
}

func (c Config) withDefaults() Config {
	if c.Shards <= 0 {
		c.Shards = 4
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 128
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = 100 * time.Millisecond
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 5 * time.Second
	}
	return c
}
