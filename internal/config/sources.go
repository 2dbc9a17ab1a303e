package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

// Source kinds accepted in a sources file
const (
	SourceKindText  = "text"
	SourceKindCSV   = "csv"
	SourceKindSheet = "sheet"
)

// SourceSpec describes one input to a generation run
type SourceSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Path locates text and csv sources
	Path string `yaml:"path,omitempty"`
	// Sheet names the spreadsheet tab; defaults to Name
	Sheet string `yaml:"sheet,omitempty"`
}

// Sources is the generation-run configuration file shape
type Sources struct {
	// Output is the artifact directory
	Output  string       `yaml:"output"`
	Sources []SourceSpec `yaml:"sources"`
}

// Validate checks the file for startup errors before any work begins
func (s *Sources) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("output", s.Output, vb)
	if len(s.Sources) == 0 {
		vb.Field("sources", "at least one source is required")
	}

	for i, src := range s.Sources {
		field := fmt.Sprintf("sources[%d]", i)
		if src.Name == "" {
			vb.Fieldf(field, "name is required")
			continue
		}

		switch src.Kind {
		case SourceKindText, SourceKindCSV:
			if src.Path == "" {
				vb.Fieldf(field, "%s source %q needs a path", src.Kind, src.Name)
			}
		case SourceKindSheet:
		default:
			vb.Fieldf(field, "unknown kind %q for source %q", src.Kind, src.Name)
		}
	}

	return vb.Build()
}

// LoadSources reads and validates a generation sources file
func LoadSources(path string) (*Sources, error) {
	raw, err := os.ReadFile(path) // #nosec G304 // operator-supplied config path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sources file %s", path)
	}

	sources := &Sources{}
	if err := yaml.Unmarshal(raw, sources); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed sources file")
	}

	if err := sources.Validate(); err != nil {
		return nil, err
	}

	return sources, nil
}
