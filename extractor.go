package studyhall

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extractor extracts flattened plain text from an uploaded document.
type Extractor interface {
	// Extract reads the document and returns its text content.
	// Implementations return the whole document as a single string;
	// a well-formed but empty document yields "" rather than an error.
	Extract(r io.Reader) (string, error)
}

// PageExtractor extracts the visible text from an HTML page.
type PageExtractor interface {
	// Extract strips non-content markup (script, style, noscript) and
	// returns the remaining visible text joined by newlines.
	Extract(html string) (string, error)
}

// Router dispatches extraction to the registered extractor for a file
// suffix, or to the fetcher/page-extractor pair for URLs. A failed
// extraction surfaces an error and no partial text.
type Router struct {
	Fetcher Fetcher
	Pages   PageExtractor

	extractors map[string]Extractor
}

// NewRouter returns a Router with no registered extractors.
func NewRouter(fetcher Fetcher, pages PageExtractor) *Router {
	return &Router{
		Fetcher:    fetcher,
		Pages:      pages,
		extractors: make(map[string]Extractor),
	}
}

// Register associates a file suffix (e.g. ".pdf") with an extractor.
func (rt *Router) Register(suffix string, e Extractor) {
	rt.extractors[strings.ToLower(suffix)] = e
}

// Suffixes returns the registered file suffixes.
func (rt *Router) Suffixes() []string {
	suffixes := make([]string, 0, len(rt.extractors))
	for s := range rt.extractors {
		suffixes = append(suffixes, s)
	}
	return suffixes
}

// ExtractFile extracts text from an uploaded document, dispatching on
// the name's suffix. An unregistered suffix fails with EUNSUPPORTED
// before any extractor runs.
func (rt *Router) ExtractFile(name string, r io.Reader) (*Content, error) {
	suffix := strings.ToLower(filepath.Ext(name))
	e, ok := rt.extractors[suffix]
	if !ok {
		return nil, Errorf(EUNSUPPORTED, "unsupported file type %q", suffix)
	}

	text, err := e.Extract(r)
	if err != nil {
		return nil, Errorf(EINVALID, "failed to extract text from %q: %s", name, err)
	}

	return &Content{Source: name, Text: text}, nil
}

// ExtractURL fetches the page and extracts its visible text. Network
// errors, non-2xx statuses, and parse errors all surface as failures.
func (rt *Router) ExtractURL(ctx context.Context, url string) (*Content, error) {
	if rt.Fetcher == nil || rt.Pages == nil {
		return nil, Errorf(EINTERNAL, "URL extraction is not configured")
	}

	html, err := rt.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, Errorf(EUNAVAILABLE, "failed to load URL %q: %s", url, err)
	}

	text, err := rt.Pages.Extract(html)
	if err != nil {
		return nil, Errorf(EINVALID, "failed to extract text from %q: %s", url, err)
	}

	return &Content{Source: url, Text: text}, nil
}

// Ensure TextExtractor implements Extractor at compile time.
var _ Extractor = (*TextExtractor)(nil)

// TextExtractor handles plain .txt uploads by decoding bytes as UTF-8.
type TextExtractor struct{}

// NewTextExtractor returns a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract reads all bytes and returns them as a UTF-8 string.
func (e *TextExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", Errorf(EINVALID, "file is not valid UTF-8 text")
	}
	return string(data), nil
}
