package ports

import "context"

// MediaFetcher reads the raw bytes behind a local path or an http(s) URL.
// Failures are reported as *entities.FetchError.
type MediaFetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

// MediaFetcherFactory creates a fetcher resolving relative paths against baseDir
type MediaFetcherFactory func(baseDir string) MediaFetcher
