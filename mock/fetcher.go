package mock

import (
	"context"

	"studyhall"
)

var _ studyhall.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of studyhall.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
