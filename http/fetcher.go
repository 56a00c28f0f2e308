// Package http provides an HTTP-based implementation of
// studyhall.Fetcher for loading study material from web pages.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"studyhall"
)

// DefaultFetchTimeout bounds a single page load. URL extraction is the
// only network call with a caller-enforced timeout; generation calls
// rely on the service client.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements studyhall.Fetcher at compile time.
var _ studyhall.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// JavaScript-rendered pages are out of scope; whatever markup the
// server returns is what gets extracted.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL. A single attempt is made;
// network failures and non-2xx statuses are reported as errors with no
// partial body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", studyhall.Errorf(studyhall.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", studyhall.Errorf(studyhall.EUNAVAILABLE, "request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", studyhall.Errorf(studyhall.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	return string(body), nil
}
