package studyhall

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a bounded-timeout GET of the URL and returns the
	// response body. Network errors and non-2xx statuses are errors.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
