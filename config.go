package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the bazaar client. Every field has
// a working default so the tool runs without a config file at all.
type Config struct {
	BazaarURL       string  `yaml:"bazaar_url"`
	HTTPTimeoutSecs int     `yaml:"http_timeout_seconds"`
	MaxRetries      int     `yaml:"max_retries"`
	RateLimit       float64 `yaml:"rate_limit"` // requests per second
	CacheTTLSecs    int     `yaml:"cache_ttl_seconds"`

	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig enables a shared snapshot cache between invocations. An empty
// address disables redis entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	TTLSecs  int    `yaml:"ttl_seconds"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func DefaultConfig() Config {
	return Config{
		BazaarURL:       "https://api.hypixel.net/v2/skyblock/bazaar",
		HTTPTimeoutSecs: 15,
		MaxRetries:      3,
		RateLimit:       1,
		CacheTTLSecs:    60,
		Redis: RedisConfig{
			TTLSecs: 60,
		},
	}
}

// LoadConfig reads a YAML config from path, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLSecs) * time.Second
}
