// Package dataset caches fetched dataset artifacts. Entries are keyed by id
// and content hash, so a republished dataset naturally misses the cache.
package dataset

//go:generate mockgen -destination=mock/mock_repository.go -package=datasetmock github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/dataset Repository

import (
	"context"
	"time"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
)

// Repository defines the interface for dataset cache operations
type Repository interface {
	// Get retrieves a cached dataset by id and hash
	// Returns errors.NotFound when the dataset is not cached
	// Returns errors.InvalidArgument if id or hash is empty
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set caches a dataset under its id and hash
	// Returns errors.InvalidArgument if the dataset is nil or unhashed
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// GetInput defines the input for retrieving a cached dataset
type GetInput struct {
	ID   string
	Hash string
}

// GetOutput defines the output for retrieving a cached dataset
type GetOutput struct {
	Dataset *wfrp.Dataset
	// CachedAt is when the dataset was stored
	CachedAt time.Time
}

// SetInput defines the input for caching a dataset
type SetInput struct {
	Dataset *wfrp.Dataset
}

// SetOutput defines the output for caching a dataset
type SetOutput struct{}
