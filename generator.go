package studyhall

import "context"

// Generation sizes requested from the model.
const (
	QuizQuestionCount = 5
	QuizOptionCount   = 4
	FlashcardCount    = 10
	StudyPlanDays     = 7
)

// ResultKind tags the shape of a structured generation result. The
// model may return schema-conformant JSON, free text that happens to
// parse, or text that does not parse at all; rendering code switches
// exhaustively on the kind instead of probing shapes at runtime.
type ResultKind int

const (
	// ResultUnparseable means no usable value came back.
	ResultUnparseable ResultKind = iota

	// ResultParsed means the structured value was recovered.
	ResultParsed

	// ResultRaw means only the raw reply text is available.
	ResultRaw
)

// QuizResult is the outcome of a quiz generation call.
type QuizResult struct {
	Kind ResultKind `json:"kind"`
	Quiz *Quiz      `json:"quiz,omitempty"`
	Raw  string     `json:"raw,omitempty"`
}

// FlashcardResult is the outcome of a flashcard generation call.
type FlashcardResult struct {
	Kind ResultKind    `json:"kind"`
	Set  *FlashcardSet `json:"set,omitempty"`
	Raw  string        `json:"raw,omitempty"`
}

// Generator produces study aids from extracted content. Each operation
// issues a single service call with no retry; failures surface as
// EUNAVAILABLE errors that the caller reports inline.
type Generator interface {
	// Summary returns a condensed markdown summary of the content.
	Summary(ctx context.Context, content string) (string, error)

	// Quiz returns QuizQuestionCount multiple-choice questions with
	// QuizOptionCount options each. The result degrades from parsed
	// quiz to raw text when the reply cannot be parsed.
	Quiz(ctx context.Context, content string) (*QuizResult, error)

	// Flashcards returns FlashcardCount term/definition cards, with
	// the same parsed-to-raw degradation as Quiz.
	Flashcards(ctx context.Context, content string) (*FlashcardResult, error)

	// StudyPlan returns a StudyPlanDays-day study plan. The reply may
	// be markdown or a structured value; RenderValue normalizes it at
	// the presentation boundary.
	StudyPlan(ctx context.Context, content string) (string, error)
}
