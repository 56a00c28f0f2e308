package studyhall

import "strings"

// PreviewLimit is the number of characters of extracted content shown
// in the preview pane before generation runs.
const PreviewLimit = 500

// Content is the flattened text extracted from one study source. It is
// created on successful extraction, replaced wholesale by the next
// extraction, and never partially mutated.
type Content struct {
	// Source is the file name or URL the text came from.
	Source string `json:"source"`

	// Text is the extracted plain text.
	Text string `json:"text"`
}

// Validate returns an error if the content cannot feed generation.
func (c *Content) Validate() error {
	if c.Source == "" {
		return Errorf(EINVALID, "content source required")
	}
	if strings.TrimSpace(c.Text) == "" {
		return Errorf(EINVALID, "no text could be extracted from %q", c.Source)
	}
	return nil
}

// Preview returns the first PreviewLimit characters of the text with an
// ellipsis when truncated.
func (c *Content) Preview() string {
	runes := []rune(c.Text)
	if len(runes) <= PreviewLimit {
		return c.Text
	}
	return string(runes[:PreviewLimit]) + "..."
}
