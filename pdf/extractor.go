// Package pdf provides a studyhall.Extractor for PDF documents using
// github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"studyhall"
)

// Ensure Extractor implements studyhall.Extractor at compile time.
var _ studyhall.Extractor = (*Extractor)(nil)

// Extractor extracts text from PDF files page by page.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document text, pages joined with newlines. A
// page that yields no text (a scanned image, a broken content stream)
// contributes an empty string rather than failing the document.
func (e *Extractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", studyhall.Errorf(studyhall.EINVALID, "failed to open PDF: %v", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, pageText(reader, i))
	}

	return strings.Join(pages, "\n"), nil
}

// pageText extracts one page's text, recovering from parser panics on
// malformed pages so a single bad page cannot sink the document.
func pageText(reader *pdf.Reader, n int) (text string) {
	defer func() { _ = recover() }()

	page := reader.Page(n)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
