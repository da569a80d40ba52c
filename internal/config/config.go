// Package config loads runtime settings from JOURNAL_-prefixed environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds everything the journal binary needs to talk to the backend
// and keep local state. Variables carry the JOURNAL_ prefix, e.g.
// JOURNAL_API_URL, JOURNAL_HTTP_TIMEOUT.
type Config struct {
	// APIURL is the backend base URL, without the /api/v1 prefix.
	APIURL string `envconfig:"API_URL" default:"https://journal-backend-api.vercel.app"`

	// HTTPTimeout bounds every request to the backend.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// SessionFile overrides the on-disk session location. Empty means
	// $XDG_CONFIG_HOME/daily-journal/session.json (or ~/.config).
	SessionFile string `envconfig:"SESSION_FILE" default:""`

	// Shards and QueueSize size the mutation executor.
	Shards    int `envconfig:"SHARDS" default:"2"`
	QueueSize int `envconfig:"QUEUE_SIZE" default:"64"`

	// MaxAttempts bounds retries of recoverable mutation failures.
	MaxAttempts int `envconfig:"MAX_ATTEMPTS" default:"3"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// New parses the environment and fills in derived defaults.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("JOURNAL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.resolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_url", cfg.APIURL).
		Dur("http_timeout", cfg.HTTPTimeout).
		Str("session_file", cfg.SessionFile).
		Int("shards", cfg.Shards).
		Msg("configuration loaded")

	return &cfg, nil
}

func (c *Config) resolveDefaults() error {
	if c.APIURL == "" {
		return fmt.Errorf("JOURNAL_API_URL must not be empty")
	}
	if c.Shards < 1 {
		return fmt.Errorf("JOURNAL_SHARDS must be at least 1, got %d", c.Shards)
	}
	if c.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		c.SessionFile = filepath.Join(dir, "daily-journal", "session.json")
	}
	return nil
}
