package main_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall"
	main "studyhall/cmd/studyhall"
	"studyhall/mock"
)

func TestPlanCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the generated plan", func(t *testing.T) {
		t.Parallel()

		generator := &mock.Generator{
			StudyPlanFn: func(context.Context, string) (string, error) {
				return "# Day 1\nRead chapter one.", nil
			},
		}
		deps, stdout, _ := newDeps(generator)

		cmd := &main.PlanCmd{Source: writeNotes(t, "notes")}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Day 1")
	})

	t.Run("reports generation failure", func(t *testing.T) {
		t.Parallel()

		generator := &mock.Generator{
			StudyPlanFn: func(context.Context, string) (string, error) {
				return "", studyhall.Errorf(studyhall.EUNAVAILABLE, "failed to generate study plan: timeout")
			},
		}
		deps, _, stderr := newDeps(generator)

		cmd := &main.PlanCmd{Source: writeNotes(t, "notes")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "timeout")
	})
}
