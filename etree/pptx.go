package etree

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"studyhall"
)

// Ensure PptxExtractor implements studyhall.Extractor at compile time.
var _ studyhall.Extractor = (*PptxExtractor)(nil)

// PptxExtractor extracts shape text from slide decks.
type PptxExtractor struct{}

// NewPptxExtractor returns a new PptxExtractor.
func NewPptxExtractor() *PptxExtractor {
	return &PptxExtractor{}
}

// Extract walks every slide in deck order. Each shape contributes its
// text-frame content when non-blank; blank shapes are skipped. All
// collected fragments are joined with newlines.
func (e *PptxExtractor) Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", studyhall.Errorf(studyhall.EINVALID, "not a valid slide deck: %v", err)
	}

	var fragments []string
	for _, file := range slideFiles(archive) {
		rc, err := file.Open()
		if err != nil {
			return "", studyhall.Errorf(studyhall.EINVALID, "failed to open %s: %v", file.Name, err)
		}

		doc := etree.NewDocument()
		_, err = doc.ReadFrom(rc)
		rc.Close()
		if err != nil {
			return "", studyhall.Errorf(studyhall.EINVALID, "failed to parse %s: %v", file.Name, err)
		}

		fragments = append(fragments, slideText(doc)...)
	}

	return strings.Join(fragments, "\n"), nil
}

// slideText returns the non-blank text of each text body on a slide,
// with the body's paragraphs joined by newlines.
func slideText(doc *etree.Document) []string {
	var fragments []string
	for _, frame := range textBodies(doc.Root()) {
		var paragraphs []string
		for _, p := range frame.FindElements(".//a:p") {
			var sb strings.Builder
			for _, t := range p.FindElements(".//a:t") {
				sb.WriteString(t.Text())
			}
			paragraphs = append(paragraphs, sb.String())
		}
		text := strings.Join(paragraphs, "\n")
		if strings.TrimSpace(text) != "" {
			fragments = append(fragments, text)
		}
	}
	return fragments
}

// textBodies collects every txBody element in document order by local
// name: shapes carry p:txBody, table cells and other graphic frames
// carry a:txBody.
func textBodies(root *etree.Element) []*etree.Element {
	if root == nil {
		return nil
	}
	var bodies []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "txBody" {
			bodies = append(bodies, el)
			return
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return bodies
}

// slideFiles returns the slide parts of the archive in deck order.
// Archive order is not reliable, so slide numbers are compared
// numerically (slide2 before slide10).
func slideFiles(archive *zip.Reader) []*zip.File {
	var slides []*zip.File
	for _, file := range archive.File {
		if strings.HasPrefix(file.Name, "ppt/slides/slide") && strings.HasSuffix(file.Name, ".xml") {
			slides = append(slides, file)
		}
	}
	sort.Slice(slides, func(i, j int) bool {
		return slideNumber(slides[i].Name) < slideNumber(slides[j].Name)
	})
	return slides
}

func slideNumber(name string) int {
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
