package main

import (
	"fmt"

	"studyhall"
)

// Run executes the plan command.
func (c *PlanCmd) Run(deps *Dependencies) error {
	content, err := loadContent(deps, c.Source)
	if err != nil {
		return err
	}

	plan, err := deps.Generator.StudyPlan(deps.Ctx, content.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studyhall.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, studyhall.RenderValue(plan))
	return nil
}
