// Package config loads gymdesk settings from ~/.gymdesk/config.yaml, a
// local .env file and GYMDESK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultUpcomingLimit = 5
	DefaultPollInterval  = 30 * time.Second
	MinPollInterval      = 5 * time.Second
	DefaultAPITimeout    = 10 * time.Second
	DefaultRatePerSecond = 5.0
	DefaultCacheTTL      = 30 * time.Second
)

type Config struct {
	MemberID      string        `yaml:"member_id"`
	Timezone      string        `yaml:"timezone"`
	UpcomingLimit int           `yaml:"upcoming_limit"`
	PollInterval  time.Duration `yaml:"poll_interval"`

	API struct {
		BaseURL       string        `yaml:"base_url"`
		APIKey        string        `yaml:"api_key"`
		Timeout       time.Duration `yaml:"timeout"`
		RatePerSecond float64       `yaml:"rate_per_second"`
	} `yaml:"api"`

	Cache struct {
		RedisAddr string        `yaml:"redis_addr"`
		TTL       time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
}

// Path returns the default config file location.
func Path(homeDir string) string {
	return filepath.Join(homeDir, ".gymdesk", "config.yaml")
}

// Load reads the config at path. A missing file is not an error: defaults
// and environment overrides still apply. A .env file in the working
// directory is loaded first without overriding variables already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		// Support ${ENV_VAR} placeholders in YAML config.
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GYMDESK_MEMBER_ID"); v != "" {
		c.MemberID = v
	}
	if v := os.Getenv("GYMDESK_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("GYMDESK_API_KEY"); v != "" {
		c.API.APIKey = v
	}
	if v := os.Getenv("GYMDESK_TIMEZONE"); v != "" {
		c.Timezone = v
	}
}

func (c *Config) applyDefaults() {
	if c.MemberID == "" {
		c.MemberID = "me"
	}
	if c.UpcomingLimit <= 0 {
		c.UpcomingLimit = DefaultUpcomingLimit
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.RatePerSecond <= 0 {
		c.API.RatePerSecond = DefaultRatePerSecond
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.PollInterval < MinPollInterval {
		return fmt.Errorf("poll_interval must be at least %s, got %s", MinPollInterval, c.PollInterval)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the configured time zone, or time.Local when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Remote reports whether classes and bookings come from the REST backend
// instead of the local store.
func (c *Config) Remote() bool {
	return c.API.BaseURL != ""
}
