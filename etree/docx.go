// Package etree provides studyhall.Extractor implementations for
// Office Open XML documents (.docx, .pptx). The formats are zip
// archives of XML parts; github.com/beevik/etree walks the parts.
package etree

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"github.com/beevik/etree"

	"studyhall"
)

// Ensure DocxExtractor implements studyhall.Extractor at compile time.
var _ studyhall.Extractor = (*DocxExtractor)(nil)

// DocxExtractor extracts paragraph text from Word documents.
type DocxExtractor struct{}

// NewDocxExtractor returns a new DocxExtractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract returns all paragraph texts joined with newlines. Empty
// paragraphs contribute empty lines, matching the document's visual
// structure.
func (e *DocxExtractor) Extract(r io.Reader) (string, error) {
	doc, err := readArchivePart(r, "word/document.xml")
	if err != nil {
		return "", err
	}

	var paragraphs []string
	for _, p := range doc.FindElements("//w:p") {
		var sb strings.Builder
		for _, t := range p.FindElements(".//w:t") {
			sb.WriteString(t.Text())
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, "\n"), nil
}

// readArchivePart opens the named XML part of a zip archive.
func readArchivePart(r io.Reader, name string) (*etree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, studyhall.Errorf(studyhall.EINVALID, "not a valid Office document: %v", err)
	}

	for _, file := range archive.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, studyhall.Errorf(studyhall.EINVALID, "failed to open %s: %v", name, err)
		}
		defer rc.Close()

		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(rc); err != nil {
			return nil, studyhall.Errorf(studyhall.EINVALID, "failed to parse %s: %v", name, err)
		}
		return doc, nil
	}

	return nil, studyhall.Errorf(studyhall.EINVALID, "document part %s not found", name)
}
