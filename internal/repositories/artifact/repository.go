// Package artifact provides the interface for persisting generated dataset
// and manifest artifacts
package artifact

//go:generate mockgen -destination=mock/mock_store.go -package=artifactmock github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/artifact Store

import (
	"context"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
)

// Store defines the interface for artifact persistence
type Store interface {
	// Prepare makes the output location ready for a fresh run, removing any
	// artifacts from previous runs
	// Returns errors.Internal for storage failures
	Prepare(ctx context.Context) error

	// SaveDataset persists one dataset as a content-addressed JSON artifact
	// plus a human-readable text rendering
	// Returns errors.InvalidArgument for nil/unhashed datasets
	// Returns errors.Internal for storage failures
	SaveDataset(ctx context.Context, input SaveDatasetInput) (*SaveDatasetOutput, error)

	// SaveManifest persists the dataset index
	// Returns errors.InvalidArgument for a nil manifest
	// Returns errors.Internal for storage failures
	SaveManifest(ctx context.Context, input SaveManifestInput) (*SaveManifestOutput, error)
}

// SaveDatasetInput defines the input for saving a dataset
type SaveDatasetInput struct {
	Dataset *wfrp.Dataset
}

// SaveDatasetOutput defines the output for saving a dataset
type SaveDatasetOutput struct {
	JSONPath string
	TextPath string
}

// SaveManifestInput defines the input for saving the manifest
type SaveManifestInput struct {
	Manifest *wfrp.Manifest
}

// SaveManifestOutput defines the output for saving the manifest
type SaveManifestOutput struct {
	Path string
}
