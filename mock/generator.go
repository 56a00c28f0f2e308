package mock

import (
	"context"

	"studyhall"
)

var _ studyhall.Generator = (*Generator)(nil)

// Generator is a mock implementation of studyhall.Generator.
type Generator struct {
	SummaryFn    func(ctx context.Context, content string) (string, error)
	QuizFn       func(ctx context.Context, content string) (*studyhall.QuizResult, error)
	FlashcardsFn func(ctx context.Context, content string) (*studyhall.FlashcardResult, error)
	StudyPlanFn  func(ctx context.Context, content string) (string, error)

	// Call counters for cache tests.
	SummaryCalls    int
	QuizCalls       int
	FlashcardsCalls int
	StudyPlanCalls  int
}

func (g *Generator) Summary(ctx context.Context, content string) (string, error) {
	g.SummaryCalls++
	return g.SummaryFn(ctx, content)
}

func (g *Generator) Quiz(ctx context.Context, content string) (*studyhall.QuizResult, error) {
	g.QuizCalls++
	return g.QuizFn(ctx, content)
}

func (g *Generator) Flashcards(ctx context.Context, content string) (*studyhall.FlashcardResult, error) {
	g.FlashcardsCalls++
	return g.FlashcardsFn(ctx, content)
}

func (g *Generator) StudyPlan(ctx context.Context, content string) (string, error) {
	g.StudyPlanCalls++
	return g.StudyPlanFn(ctx, content)
}
