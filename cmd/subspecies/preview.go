package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/config"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/merge"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/retry"
)

var (
	previewBaselinePath string
	previewDataDir      string
	previewEnable       []string
	previewReplaceRAW   bool
	previewDebug        bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a merge against a baseline configuration",
	Long:  `Runs the collection merge without a host application: loads a baseline species configuration from a JSON file, overlays the enabled datasets and prints the merged configuration. Datasets come from the published artifacts when SUBSPECIES_CONTENT_BASE_URL is set (with the redis cache when SUBSPECIES_REDIS_ENDPOINT is set too), otherwise from a local artifact directory.`,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewBaselinePath, "baseline", "", "baseline species configuration JSON file")
	previewCmd.Flags().StringVar(&previewDataDir, "data", "dist", "local artifact directory, used when no content base URL is configured")
	previewCmd.Flags().StringSliceVar(&previewEnable, "enable", nil, "dataset ids to enable")
	previewCmd.Flags().BoolVar(&previewReplaceRAW, "replace-raw", false, "drop baseline entries from the merged result")
	previewCmd.Flags().BoolVar(&previewDebug, "debug", false, "verbose diagnostics")
	_ = previewCmd.MarkFlagRequired("baseline")
}

func runPreview(cmd *cobra.Command, args []string) error {
	// Optional local overrides; absence is not an error
	_ = godotenv.Load()

	rt, err := config.Load()
	if err != nil {
		return err
	}
	if previewDebug {
		rt.Debug = true
	}

	host, err := newFileHost(previewBaselinePath)
	if err != nil {
		return err
	}

	settings := &staticSettings{enabled: previewEnable, replaceRAW: previewReplaceRAW, debug: rt.Debug}

	var session *merge.Session
	if rt.ContentBaseURL != "" {
		session, err = merge.NewRuntimeSession(rt, host, settings)
	} else {
		session, err = merge.NewSession(&merge.Config{
			Host:     host,
			Settings: settings,
			Content:  &dirContent{dir: previewDataDir},
			Poll: &retry.Config{
				Interval:    rt.HostPollInterval,
				MaxAttempts: rt.HostPollMaxAttempts,
			},
		})
	}
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := session.WaitForHost(ctx); err != nil {
		return err
	}
	if err := session.CaptureBaseline(ctx); err != nil {
		return err
	}
	if err := session.Merge(ctx); err != nil {
		return err
	}

	out, err := json.MarshalIndent(host.merged, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

// fileHost is an offline merge.Host backed by a baseline JSON file. The
// merged configuration is captured instead of written anywhere.
type fileHost struct {
	baseline wfrp.SpeciesConfig
	merged   wfrp.SpeciesConfig
}

func newFileHost(path string) (*fileHost, error) {
	raw, err := os.ReadFile(path) // #nosec G304 // operator-supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read baseline %s", path)
	}

	var baseline wfrp.SpeciesConfig
	if err := json.Unmarshal(raw, &baseline); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed baseline file")
	}

	return &fileHost{baseline: baseline}, nil
}

func (h *fileHost) Ready(ctx context.Context) bool {
	return true
}

func (h *fileHost) Subspecies(ctx context.Context) (wfrp.SpeciesConfig, error) {
	return h.baseline, nil
}

func (h *fileHost) SetSubspecies(ctx context.Context, cfg wfrp.SpeciesConfig) error {
	h.merged = cfg
	return nil
}

// staticSettings is a fixed merge.Settings snapshot built from flags
type staticSettings struct {
	enabled    []string
	replaceRAW bool
	debug      bool
}

func (s *staticSettings) EnabledDatasets() []string { return s.enabled }
func (s *staticSettings) ReplaceRAWData() bool      { return s.replaceRAW }
func (s *staticSettings) Debug() bool               { return s.debug }

// dirContent serves manifest and dataset files from a local artifact
// directory through the content.Client interface
type dirContent struct {
	dir string
}

func (c *dirContent) GetManifest(ctx context.Context) (*wfrp.Manifest, error) {
	manifest := &wfrp.Manifest{}
	if err := c.readJSON("manifest", manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (c *dirContent) GetDataset(ctx context.Context, filename string) (*wfrp.Dataset, error) {
	dataset := &wfrp.Dataset{}
	if err := c.readJSON(filename, dataset); err != nil {
		return nil, err
	}
	return dataset, nil
}

func (c *dirContent) readJSON(filename string, out interface{}) error {
	path := filepath.Join(c.dir, filename+".json")
	raw, err := os.ReadFile(path) // #nosec G304 // paths come from the local manifest
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("%s not found", path)
		}
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "malformed artifact %s", path)
	}
	return nil
}
