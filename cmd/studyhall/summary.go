package main

import (
	"fmt"

	"studyhall"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	content, err := loadContent(deps, c.Source)
	if err != nil {
		return err
	}

	summary, err := deps.Generator.Summary(deps.Ctx, content.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studyhall.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
