package main

import (
	"fmt"
	"os"
	"strings"

	"studyhall"
)

// loadContent resolves a source argument to extracted study content.
// Sources with an http or https scheme are fetched; everything else is
// treated as a local file path. The preview goes to stderr so piped
// stdout stays clean.
func loadContent(deps *Dependencies, source string) (*studyhall.Content, error) {
	content, err := extract(deps, source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studyhall.ErrorMessage(err))
		return nil, err
	}

	if err := content.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studyhall.ErrorMessage(err))
		return nil, err
	}

	fmt.Fprintf(deps.Stderr, "Extracted %d characters from %s\n", len(content.Text), content.Source)
	fmt.Fprintf(deps.Stderr, "--- preview ---\n%s\n---\n", content.Preview())
	return content, nil
}

func extract(deps *Dependencies, source string) (*studyhall.Content, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return deps.Router.ExtractURL(deps.Ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, studyhall.Errorf(studyhall.ENOTFOUND, "cannot open %q: %s", source, err)
	}
	defer f.Close()

	return deps.Router.ExtractFile(source, f)
}
