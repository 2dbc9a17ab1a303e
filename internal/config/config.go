// Package config loads runtime settings from the environment and
// generation-run source lists from YAML.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

// Runtime holds the environment-driven settings for the runtime merge side
type Runtime struct {
	// ContentBaseURL is the artifact root the content client fetches from
	ContentBaseURL string `env:"SUBSPECIES_CONTENT_BASE_URL"`
	// FetchTimeout bounds each content request
	FetchTimeout time.Duration `env:"SUBSPECIES_FETCH_TIMEOUT" envDefault:"10s"`
	// RedisEndpoint enables the dataset cache when set
	RedisEndpoint string `env:"SUBSPECIES_REDIS_ENDPOINT"`
	// CacheTTL bounds cached dataset lifetime; zero means no expiry
	CacheTTL time.Duration `env:"SUBSPECIES_CACHE_TTL" envDefault:"24h"`
	// HostPollInterval is the pause between host readiness checks
	HostPollInterval time.Duration `env:"SUBSPECIES_HOST_POLL_INTERVAL" envDefault:"500ms"`
	// HostPollMaxAttempts caps the readiness checks before giving up
	HostPollMaxAttempts int `env:"SUBSPECIES_HOST_POLL_MAX_ATTEMPTS" envDefault:"20"`
	// Debug gates diagnostic logging
	Debug bool `env:"SUBSPECIES_DEBUG" envDefault:"false"`
}

// CacheEnabled reports whether the redis dataset cache is configured
func (r *Runtime) CacheEnabled() bool {
	return r.RedisEndpoint != ""
}

// Load parses the runtime configuration from the environment
func Load() (*Runtime, error) {
	cfg := &Runtime{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment configuration")
	}
	return cfg, nil
}
