package main

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/config"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/generation"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/artifact"
)

var generateConfigPath string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate dataset artifacts from the configured sources",
	Long:  `Parses every source listed in the sources file, normalizes its entries and writes content-addressed dataset files plus a manifest to the output directory. The run halts on the first malformed source; nothing is written until all sources pass validation.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "sources.yaml", "sources file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Optional local overrides; absence is not an error
	_ = godotenv.Load()

	sources, err := config.LoadSources(generateConfigPath)
	if err != nil {
		return err
	}

	if err := checkSheetSources(sources); err != nil {
		return err
	}

	store, err := artifact.NewFile(&artifact.FileConfig{Dir: sources.Output})
	if err != nil {
		return err
	}

	orchestrator, err := generation.NewOrchestrator(&generation.Config{Store: store})
	if err != nil {
		return err
	}

	input := &generation.RunInput{}
	for _, src := range sources.Sources {
		input.Sources = append(input.Sources, generation.Source{
			Name:  src.Name,
			Kind:  generation.SourceKind(src.Kind),
			Path:  src.Path,
			Sheet: src.Sheet,
		})
	}

	output, err := orchestrator.Run(context.Background(), input)
	if err != nil {
		return err
	}

	slog.Info("Wrote artifacts", "dir", sources.Output, "datasets", len(output.Datasets))
	return nil
}

// checkSheetSources rejects sheet sources at startup, before any writes.
// The spreadsheet transport is a collaborator behind generation.SheetSource
// and is not bundled with the CLI; sheet data arrives exported as csv.
func checkSheetSources(sources *config.Sources) error {
	for _, src := range sources.Sources {
		if src.Kind == config.SourceKindSheet {
			return errors.Unimplementedf("no spreadsheet transport is bundled; export %q to csv or drive the generation library with a SheetSource", src.Name)
		}
	}
	return nil
}
