package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// Fetcher reads media from local files or http(s) URLs
type Fetcher struct {
	fs      ports.FileSystem
	client  ports.HTTPClient
	baseDir string
}

// NewFetcher creates a fetcher. Relative local paths are resolved against baseDir.
func NewFetcher(fs ports.FileSystem, client ports.HTTPClient, baseDir string) *Fetcher {
	return &Fetcher{
		fs:      fs,
		client:  client,
		baseDir: baseDir,
	}
}

// NewFactory returns a MediaFetcherFactory sharing fs and client
func NewFactory(fs ports.FileSystem, client ports.HTTPClient) ports.MediaFetcherFactory {
	return func(baseDir string) ports.MediaFetcher {
		return NewFetcher(fs, client, baseDir)
	}
}

// Fetch returns the bytes behind src
func (f *Fetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	if isRemote(src) {
		return f.fetchRemote(ctx, src)
	}
	return f.fetchLocal(src)
}

func (f *Fetcher) fetchLocal(src string) ([]byte, error) {
	path := src
	if !filepath.IsAbs(path) && f.baseDir != "" {
		path = filepath.Join(f.baseDir, path)
	}

	data, err := f.fs.ReadFile(path)
	if err != nil {
		return nil, &entities.FetchError{Source: src, Err: err}
	}
	return data, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context, src string) ([]byte, error) {
	resp, err := f.client.Get(ctx, src)
	if err != nil {
		return nil, &entities.FetchError{Source: src, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &entities.FetchError{
			Source: src,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entities.FetchError{Source: src, Err: fmt.Errorf("reading body: %w", err)}
	}
	return data, nil
}

func isRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// NewHTTPClient builds the client used for remote media from cfg
func NewHTTPClient(cfg entities.MediaConfig) ports.HTTPClient {
	return ports.NewRealHTTPClient(ports.HTTPClientConfig{
		Timeout:         cfg.GetFetchTimeout(),
		FollowRedirects: true,
		UserAgent:       cfg.UserAgent,
	})
}

// Ensure Fetcher implements ports.MediaFetcher
var _ ports.MediaFetcher = (*Fetcher)(nil)
