// Package merge implements the runtime collection merge session: capture
// the host's baseline subspecies configuration once, then overlay enabled
// custom datasets on top of it, re-entrantly, for the rest of the session.
package merge

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mergemock github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/orchestrators/merge Host,Settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/clients/content"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/retry"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/repositories/dataset"
)

// Host is the adapter over the application that owns the live subspecies
// configuration. The session reads it once for the baseline and overwrites
// it wholesale on each merge.
type Host interface {
	// Ready reports whether the host configuration is live and populated
	Ready(ctx context.Context) bool

	// Subspecies returns the host's current configuration
	Subspecies(ctx context.Context) (wfrp.SpeciesConfig, error)

	// SetSubspecies replaces the host's configuration
	SetSubspecies(ctx context.Context, cfg wfrp.SpeciesConfig) error
}

// Settings exposes the user-facing knobs the merge honors
type Settings interface {
	// EnabledDatasets returns the ordered ids of the enabled custom datasets
	EnabledDatasets() []string

	// ReplaceRAWData reports whether baseline entries are dropped from the
	// merged result
	ReplaceRAWData() bool

	// Debug gates diagnostic logging
	Debug() bool
}

type state int

const (
	stateUninitialized state = iota
	stateBaselineCaptured
	stateMerged
)

// Config holds the dependencies for a merge session
type Config struct {
	Host     Host
	Settings Settings
	Content  content.Client
	// Cache is optional; when nil every missing dataset is fetched
	Cache dataset.Repository
	// Poll bounds the host readiness wait
	Poll *retry.Config
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Host == nil {
		vb.RequiredField("Host")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Poll == nil {
		vb.RequiredField("Poll")
	}

	return vb.Build()
}

// Session is the per-host-session merge state machine. It moves from
// uninitialized to baseline-captured to merged; merges are re-entrant and
// always recomputed from the captured baseline, never from the host's
// current (possibly already merged) configuration.
//
// A session is owned by one logical thread; dataset fetches inside Merge
// are the only internal concurrency.
type Session struct {
	host     Host
	settings Settings
	content  content.Client
	cache    dataset.Repository
	poll     *retry.Config

	state    state
	baseline wfrp.SpeciesConfig
	manifest *wfrp.Manifest
	loaded   map[string]*wfrp.Dataset
}

// NewSession creates a merge session in the uninitialized state
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Session{
		host:     cfg.Host,
		settings: cfg.Settings,
		content:  cfg.Content,
		cache:    cfg.Cache,
		poll:     cfg.Poll,
		loaded:   make(map[string]*wfrp.Dataset),
	}, nil
}

// WaitForHost polls until the host reports ready. On timeout the host
// configuration is untouched and errors.Unavailable is returned.
func (s *Session) WaitForHost(ctx context.Context) error {
	err := retry.WaitUntil(ctx, s.poll, s.host.Ready)
	if err != nil && errors.IsUnavailable(err) {
		return errors.Wrap(err, "host never became ready")
	}
	return err
}

// CaptureBaseline stores an independent deep copy of the host's current
// configuration. Idempotent: once captured, later calls are no-ops, which
// guards against duplicate lifecycle events re-capturing an already merged
// configuration as the baseline.
func (s *Session) CaptureBaseline(ctx context.Context) error {
	if s.state != stateUninitialized {
		return nil
	}

	cfg, err := s.host.Subspecies(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read host configuration")
	}

	s.baseline = cfg.Clone()
	s.state = stateBaselineCaptured

	if s.settings.Debug() {
		slog.Debug("Captured baseline configuration", "species", len(s.baseline))
	}

	return nil
}

// Merge recomputes the host configuration from the stored baseline and the
// currently enabled datasets, then writes it back. Re-entrant: settings
// changes within a session just call Merge again. On failure the host
// configuration is left unmodified.
func (s *Session) Merge(ctx context.Context) error {
	if s.state == stateUninitialized {
		return errors.FailedPrecondition("baseline not captured")
	}

	datasets, err := s.loadEnabledDatasets(ctx)
	if err != nil {
		return err
	}

	custom := flattenDatasets(datasets)
	customCount := entryCount(custom)

	// With nothing to overlay the baseline goes back verbatim, not a
	// reshaped equivalent
	if customCount == 0 {
		if err := s.host.SetSubspecies(ctx, s.baseline.Clone()); err != nil {
			return errors.Wrap(err, "failed to restore baseline configuration")
		}
		s.state = stateMerged
		slog.Info("No custom entries enabled, restored baseline")
		return nil
	}

	merged := mergeCollections(flattenConfig(s.baseline), custom, s.settings.ReplaceRAWData())

	if err := s.host.SetSubspecies(ctx, merged); err != nil {
		return errors.Wrap(err, "failed to write merged configuration")
	}
	s.state = stateMerged

	slog.Info("Merged custom entries", "count", customCount, "datasets", len(datasets))

	return nil
}

// loadEnabledDatasets resolves every enabled dataset id to its content,
// fetching missing ones concurrently. A dataset that cannot be resolved is
// skipped with a diagnostic; one bad dataset never blocks the rest.
func (s *Session) loadEnabledDatasets(ctx context.Context) ([]*wfrp.Dataset, error) {
	enabled := s.settings.EnabledDatasets()
	if len(enabled) == 0 {
		return nil, nil
	}

	if s.manifest == nil {
		manifest, err := s.content.GetManifest(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load dataset manifest")
		}
		s.manifest = manifest
	}

	var missing []wfrp.ManifestEntry
	for _, id := range enabled {
		if _, ok := s.loaded[id]; ok {
			continue
		}

		entry := s.manifest.Find(id)
		if entry == nil {
			slog.Warn("Enabled dataset not in manifest, skipping", "id", id)
			continue
		}
		missing = append(missing, *entry)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, entry := range missing {
		wg.Add(1)
		go func(entry wfrp.ManifestEntry) {
			defer wg.Done()

			d, err := s.fetchDataset(ctx, entry)
			if err != nil {
				slog.Warn("Failed to load dataset, skipping", "id", entry.ID, "error", err)
				return
			}

			mu.Lock()
			s.loaded[entry.ID] = d
			mu.Unlock()
		}(entry)
	}
	wg.Wait()

	datasets := make([]*wfrp.Dataset, 0, len(enabled))
	for _, id := range enabled {
		if d, ok := s.loaded[id]; ok {
			datasets = append(datasets, d)
		}
	}
	return datasets, nil
}

// fetchDataset resolves one dataset through the cache, falling back to a
// content fetch on a miss. Cache failures degrade to a fetch.
func (s *Session) fetchDataset(ctx context.Context, entry wfrp.ManifestEntry) (*wfrp.Dataset, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, dataset.GetInput{ID: entry.ID, Hash: entry.Hash})
		if err == nil {
			if s.settings.Debug() {
				slog.Debug("Dataset cache hit", "id", entry.ID, "cached_at", cached.CachedAt)
			}
			return cached.Dataset, nil
		}
		if !errors.IsNotFound(err) {
			slog.Warn("Dataset cache lookup failed", "id", entry.ID, "error", err)
		}
	}

	d, err := s.content.GetDataset(ctx, entry.Filename)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if _, err := s.cache.Set(ctx, dataset.SetInput{Dataset: d}); err != nil {
			slog.Warn("Failed to cache dataset", "id", entry.ID, "error", err)
		}
	}

	return d, nil
}
