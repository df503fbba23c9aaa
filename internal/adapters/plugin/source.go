package plugin

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second
	// maxDescriptorSize bounds how much of a remote response is read.
	maxDescriptorSize = 1 << 20
)

// Fetcher reads plugin descriptors from local files and HTTP(S) URLs.
type Fetcher struct {
	env        ports.Environment
	httpClient *http.Client
}

// NewFetcher creates a Fetcher that reads local files through env.
func NewFetcher(env ports.Environment) *Fetcher {
	return NewFetcherWithClient(env, &http.Client{Timeout: httpClientTimeout})
}

// NewFetcherWithClient creates a Fetcher with a custom http client.
func NewFetcherWithClient(env ports.Environment, client *http.Client) *Fetcher {
	return &Fetcher{env: env, httpClient: client}
}

// ReadLocal reads a descriptor file and returns it with its content hash.
func (f *Fetcher) ReadLocal(path string) ([]byte, uint64, error) {
	data, err := f.env.ReadFile(path)
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, domain.ErrPluginFetchFailed.Error()), "locator", path)
	}
	return data, xxhash.Sum64(data), nil
}

// Download fetches a descriptor over HTTP.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPluginFetchFailed.Error()), "locator", url)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPluginFetchFailed.Error()), "locator", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrPluginFetchFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "locator", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorSize))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPluginFetchFailed.Error()), "locator", url)
	}
	return body, nil
}
