// Package generation implements the offline data-generation pipeline: raw
// sources in, hashed dataset artifacts and a manifest out
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/generation Service,SheetSource

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/parser"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/artifact"
)

// SourceKind identifies which input adapter a source uses
type SourceKind string

// Source kinds
const (
	SourceKindText  SourceKind = "text"
	SourceKindCSV   SourceKind = "csv"
	SourceKindSheet SourceKind = "sheet"
)

// Source describes one raw input to the pipeline
type Source struct {
	// Name becomes the dataset id (kebab-cased)
	Name string
	// Kind selects the adapter
	Kind SourceKind
	// Path locates text and csv sources on disk
	Path string
	// Sheet names the spreadsheet tab for sheet sources; empty means the
	// source name
	Sheet string
}

// Service defines the interface for generation runs
type Service interface {
	// Run executes the pipeline over the given sources, sequentially and
	// fail-fast: the first malformed source aborts the run
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// SheetSource fetches already-tabular rows from a spreadsheet. The transport
// is a host-side collaborator; only the row shape is contracted here.
type SheetSource interface {
	// ListSheets returns the spreadsheet's tab names, trimmed
	ListSheets(ctx context.Context) ([]string, error)

	// GetRows returns the non-empty rows of one tab
	GetRows(ctx context.Context, sheetName string) ([][]string, error)
}

// RunInput defines the input for a generation run
type RunInput struct {
	Sources []Source
	// DiscoverSheets appends one sheet source per spreadsheet tab
	DiscoverSheets bool
}

// RunOutput defines the output for a generation run
type RunOutput struct {
	Datasets []*wfrp.Dataset
	Manifest *wfrp.Manifest
}

// Config holds the dependencies for the generation orchestrator
type Config struct {
	Store artifact.Store
	// Sheets is only required when sheet sources are used
	Sheets SheetSource
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}

	return vb.Build()
}

type orchestrator struct {
	store  artifact.Store
	sheets SheetSource
}

// NewOrchestrator creates a new generation orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		store:  cfg.Store,
		sheets: cfg.Sheets,
	}, nil
}

func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	sources, err := o.resolveSources(ctx, input)
	if err != nil {
		return nil, err
	}

	// All inputs are checked before the output dir is touched, so a
	// misconfigured run has no side effects
	if err := o.validateSources(sources); err != nil {
		return nil, err
	}

	if err := o.store.Prepare(ctx); err != nil {
		return nil, err
	}

	datasets := make([]*wfrp.Dataset, 0, len(sources))
	for _, source := range sources {
		dataset, err := o.processSource(ctx, source)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, dataset)
	}

	manifest := BuildManifest(datasets)
	if _, err := o.store.SaveManifest(ctx, artifact.SaveManifestInput{Manifest: manifest}); err != nil {
		return nil, err
	}

	slog.Info("Generation run complete", "datasets", len(datasets))

	return &RunOutput{Datasets: datasets, Manifest: manifest}, nil
}

func (o *orchestrator) resolveSources(ctx context.Context, input *RunInput) ([]Source, error) {
	sources := append([]Source(nil), input.Sources...)

	if input.DiscoverSheets {
		if o.sheets == nil {
			return nil, errors.FailedPrecondition("sheet discovery requires a spreadsheet source")
		}

		names, err := o.sheets.ListSheets(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list sheets")
		}
		for _, name := range names {
			sources = append(sources, Source{Name: name, Kind: SourceKindSheet, Sheet: name})
		}
	}

	return sources, nil
}

func (o *orchestrator) validateSources(sources []Source) error {
	vb := errors.NewValidationBuilder()

	for _, source := range sources {
		if strings.TrimSpace(source.Name) == "" {
			vb.RequiredField("Name")
			continue
		}

		switch source.Kind {
		case SourceKindText, SourceKindCSV:
			if source.Path == "" {
				vb.Fieldf(source.Name, "%s source needs a path", source.Kind)
			} else if _, err := os.Stat(source.Path); err != nil {
				vb.Fieldf(source.Name, "cannot read %s", source.Path)
			}
		case SourceKindSheet:
			if o.sheets == nil {
				vb.Field(source.Name, "sheet source requires a spreadsheet source")
			}
		default:
			vb.Fieldf(source.Name, "unknown source kind %q", source.Kind)
		}
	}

	return vb.Build()
}

func (o *orchestrator) processSource(ctx context.Context, source Source) (*wfrp.Dataset, error) {
	rows, err := o.sourceRows(ctx, source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read source '%s'", source.Name)
	}

	dataset, err := BuildDataset(source.Name, rows)
	if err != nil {
		return nil, err
	}

	if _, err := o.store.SaveDataset(ctx, artifact.SaveDatasetInput{Dataset: dataset}); err != nil {
		return nil, errors.Wrapf(err, "failed to write dataset '%s'", dataset.ID)
	}

	slog.Info("Generated dataset",
		"id", dataset.ID,
		"hash", dataset.Hash,
		"species", dataset.Species,
		"entries", len(dataset.Entries))

	return dataset, nil
}

func (o *orchestrator) sourceRows(ctx context.Context, source Source) ([][]string, error) {
	switch source.Kind {
	case SourceKindText:
		raw, err := os.ReadFile(source.Path)
		if err != nil {
			return nil, err
		}
		return parser.ParseText(string(raw))

	case SourceKindCSV:
		f, err := os.Open(source.Path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return parser.ParseCSV(f)

	case SourceKindSheet:
		sheet := source.Sheet
		if sheet == "" {
			sheet = source.Name
		}
		rows, err := o.sheets.GetRows(ctx, sheet)
		if err != nil {
			return nil, err
		}
		return parser.ParseSheetRows(rows), nil

	default:
		return nil, errors.InvalidArgumentf("unknown source kind %q", source.Kind)
	}
}
