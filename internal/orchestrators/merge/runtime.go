package merge

import (
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/clients/content"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/config"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/clock"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/retry"
	redisclient "github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/redis"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/dataset"
)

// NewRuntimeSession composes a session from environment-driven settings:
// the HTTP content client for dataset fetches and, when a redis endpoint is
// configured, the dataset cache in front of it. The host and settings
// adapters stay with the caller, which knows the embedding.
func NewRuntimeSession(rt *config.Runtime, host Host, settings Settings) (*Session, error) {
	if rt == nil {
		return nil, errors.InvalidArgument("runtime config cannot be nil")
	}
	if rt.ContentBaseURL == "" {
		return nil, errors.InvalidArgument("SUBSPECIES_CONTENT_BASE_URL is required")
	}

	client, err := content.New(&content.Config{
		BaseURL: rt.ContentBaseURL,
		Timeout: rt.FetchTimeout,
	})
	if err != nil {
		return nil, err
	}

	var cache dataset.Repository
	if rt.CacheEnabled() {
		redisClient, err := redisclient.NewClient(rt.RedisEndpoint, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}

		cache, err = dataset.NewRedis(&dataset.RedisConfig{
			Client: redisClient,
			Clock:  clock.New(),
			TTL:    rt.CacheTTL,
		})
		if err != nil {
			return nil, err
		}
	}

	return NewSession(&Config{
		Host:     host,
		Settings: settings,
		Content:  client,
		Cache:    cache,
		Poll: &retry.Config{
			Interval:    rt.HostPollInterval,
			MaxAttempts: rt.HostPollMaxAttempts,
		},
	})
}
