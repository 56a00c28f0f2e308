// Package mock provides function-field mock implementations of the
// studyhall interfaces for testing.
package mock

import (
	"io"

	"studyhall"
)

var _ studyhall.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of studyhall.Extractor.
type Extractor struct {
	ExtractFn func(r io.Reader) (string, error)

	// ExtractInvoked records whether Extract was called.
	ExtractInvoked bool
}

func (e *Extractor) Extract(r io.Reader) (string, error) {
	e.ExtractInvoked = true
	return e.ExtractFn(r)
}

var _ studyhall.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of studyhall.PageExtractor.
type PageExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *PageExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
