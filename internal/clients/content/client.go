// Package content fetches published dataset artifacts over HTTP. The
// runtime loads the manifest first and then the content-addressed dataset
// files it names.
package content

//go:generate mockgen -destination=mock/mock_client.go -package=contentmock github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/clients/content Client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/entities/wfrp"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
)

const (
	manifestFilename = "manifest"
	dataPathPrefix   = "data"

	defaultTimeout = 10 * time.Second
)

// Client defines the interface for fetching published artifacts
type Client interface {
	// GetManifest fetches the dataset index
	GetManifest(ctx context.Context) (*wfrp.Manifest, error)

	// GetDataset fetches one dataset by its content-addressed filename,
	// without the .json extension
	GetDataset(ctx context.Context, filename string) (*wfrp.Dataset, error)
}

// Config holds the settings for the HTTP content client
type Config struct {
	// BaseURL is the artifact root, without the trailing data/ segment
	BaseURL string
	// Timeout bounds each request; defaults to 10s
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("BaseURL", c.BaseURL, vb)
	if c.BaseURL != "" {
		if _, err := url.Parse(c.BaseURL); err != nil {
			vb.InvalidField("BaseURL", err.Error())
		}
	}

	return vb.Build()
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// New creates an HTTP content client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &httpClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  client,
	}, nil
}

func (c *httpClient) GetManifest(ctx context.Context) (*wfrp.Manifest, error) {
	manifest := &wfrp.Manifest{}
	if err := c.getJSON(ctx, manifestFilename, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (c *httpClient) GetDataset(ctx context.Context, filename string) (*wfrp.Dataset, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, errors.InvalidArgument("filename is required")
	}

	dataset := &wfrp.Dataset{}
	if err := c.getJSON(ctx, filename, dataset); err != nil {
		return nil, err
	}
	return dataset, nil
}

func (c *httpClient) getJSON(ctx context.Context, filename string, out interface{}) error {
	endpoint := fmt.Sprintf("%s/%s/%s.json", c.baseURL, dataPathPrefix, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", endpoint)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "content request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if err := errors.FromHTTPStatusf(resp.StatusCode, "fetching %s returned %s", filename, resp.Status); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "malformed content payload")
	}

	return nil
}
