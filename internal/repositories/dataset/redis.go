package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/clock"
	redisclient "github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/redis"
)

const datasetKeyPrefix = "dataset:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis dataset cache.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL bounds how long a cached dataset lives; zero means no expiry
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Clock == nil {
		return errors.InvalidArgument("clock cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed dataset cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// datasetData is the storage structure for a cached dataset
type datasetData struct {
	Dataset  *wfrp.Dataset `json:"dataset"`
	CachedAt time.Time     `json:"cached_at"`
}

func datasetKey(id, hash string) string {
	return fmt.Sprintf("%s%s:%s", datasetKeyPrefix, id, hash)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("dataset ID cannot be empty")
	}
	if input.Hash == "" {
		return nil, errors.InvalidArgument("dataset hash cannot be empty")
	}

	key := datasetKey(input.ID, input.Hash)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("dataset %s (%s) not cached", input.ID, input.Hash)
		}
		return nil, errors.Wrapf(err, "failed to get dataset %s", input.ID)
	}

	var data datasetData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal dataset data")
	}

	return &GetOutput{
		Dataset:  data.Dataset,
		CachedAt: data.CachedAt,
	}, nil
}

func (r *redisRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Dataset == nil {
		return nil, errors.InvalidArgument("dataset cannot be nil")
	}
	if input.Dataset.ID == "" || input.Dataset.Hash == "" {
		return nil, errors.InvalidArgument("dataset must have an id and a hash")
	}

	data := datasetData{
		Dataset:  input.Dataset,
		CachedAt: r.clock.Now().UTC(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal dataset data")
	}

	key := datasetKey(input.Dataset.ID, input.Dataset.Hash)
	if err := r.client.Set(ctx, key, jsonData, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache dataset %s", input.Dataset.ID)
	}

	return &SetOutput{}, nil
}
