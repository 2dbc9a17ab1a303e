package artifact

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

const manifestFilename = "manifest.json"

type fileStore struct {
	dir string
}

// FileConfig contains configuration for the filesystem artifact store.
type FileConfig struct {
	// Dir is the output directory for generated artifacts
	Dir string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Dir == "" {
		return errors.InvalidArgument("dir cannot be empty")
	}
	return nil
}

// NewFile creates a filesystem-backed artifact store
func NewFile(cfg *FileConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileStore{dir: cfg.Dir}, nil
}

func (s *fileStore) Prepare(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output dir")
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return errors.Wrap(err, "failed to read output dir")
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(s.dir, entry.Name())); err != nil {
			return errors.Wrap(err, "failed to empty output dir")
		}
	}

	return nil
}

func (s *fileStore) SaveDataset(_ context.Context, input SaveDatasetInput) (*SaveDatasetOutput, error) {
	if input.Dataset == nil {
		return nil, errors.InvalidArgument("dataset cannot be nil")
	}
	if input.Dataset.Hash == "" {
		return nil, errors.InvalidArgument("dataset hash cannot be empty")
	}

	data, err := json.MarshalIndent(input.Dataset, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal dataset")
	}

	base := input.Dataset.Filename()
	jsonPath := filepath.Join(s.dir, base+".json")
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write dataset")
	}

	textPath := filepath.Join(s.dir, base+".txt")
	if err := os.WriteFile(textPath, []byte(renderText(input.Dataset)), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write text rendering")
	}

	return &SaveDatasetOutput{JSONPath: jsonPath, TextPath: textPath}, nil
}

func (s *fileStore) SaveManifest(_ context.Context, input SaveManifestInput) (*SaveManifestOutput, error) {
	if input.Manifest == nil {
		return nil, errors.InvalidArgument("manifest cannot be nil")
	}

	data, err := json.MarshalIndent(input.Manifest, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal manifest")
	}

	path := filepath.Join(s.dir, manifestFilename)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write manifest")
	}

	return &SaveManifestOutput{Path: path}, nil
}

// renderText produces the companion human-readable rendering: per entry the
// name, then skills one per line, then talents one per line, entries
// separated by a blank line
func renderText(dataset *wfrp.Dataset) string {
	blocks := make([]string, 0, len(dataset.Entries))
	for _, entry := range dataset.Entries {
		parts := []string{
			entry.Name,
			strings.Join(entry.Skills, "\n"),
			strings.Join(entry.Talents, "\n"),
		}
		blocks = append(blocks, strings.Join(parts, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
