// Package gemini implements studyhall.Generator using Google Gemini.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"studyhall"
)

// DefaultModel is used unless the caller overrides it.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements studyhall.Generator at compile time.
var _ studyhall.Generator = (*Generator)(nil)

// Generator produces study aids through the Gemini API. Each operation
// makes a single attempt with no retry; quiz and flashcard generation
// falls back from schema-constrained to unconstrained output before
// giving up.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects
// DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Summary returns a condensed markdown summary of the content.
func (g *Generator) Summary(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", studyhall.Errorf(studyhall.EINVALID, "study content required")
	}

	resp, err := g.generate(ctx, SummaryPrompt(content), BuildConfig())
	if err != nil {
		return "", studyhall.Errorf(studyhall.EUNAVAILABLE, "failed to generate summary: %v", err)
	}
	return ResponseText(resp), nil
}

// Quiz returns a multiple-choice quiz for the content. The result
// degrades from parsed quiz to raw reply text when the model ignores
// the schema; only a double service failure is an error.
func (g *Generator) Quiz(ctx context.Context, content string) (*studyhall.QuizResult, error) {
	if content == "" {
		return nil, studyhall.Errorf(studyhall.EINVALID, "study content required")
	}

	resp, err := g.generateWithFallback(ctx, QuizPrompt(content), quizSchema())
	if err != nil {
		return nil, studyhall.Errorf(studyhall.EUNAVAILABLE, "failed to generate quiz: %v", err)
	}

	if v, ok := ResponseStructured(resp); ok {
		if quiz, ok := studyhall.NormalizeQuiz(v); ok {
			return &studyhall.QuizResult{Kind: studyhall.ResultParsed, Quiz: quiz}, nil
		}
	}

	if text := ResponseText(resp); text != "" {
		return &studyhall.QuizResult{Kind: studyhall.ResultRaw, Raw: text}, nil
	}
	return &studyhall.QuizResult{Kind: studyhall.ResultUnparseable}, nil
}

// Flashcards returns a term/definition deck for the content, with the
// same degradation chain as Quiz.
func (g *Generator) Flashcards(ctx context.Context, content string) (*studyhall.FlashcardResult, error) {
	if content == "" {
		return nil, studyhall.Errorf(studyhall.EINVALID, "study content required")
	}

	resp, err := g.generateWithFallback(ctx, FlashcardPrompt(content), flashcardSchema())
	if err != nil {
		return nil, studyhall.Errorf(studyhall.EUNAVAILABLE, "failed to generate flashcards: %v", err)
	}

	if v, ok := ResponseStructured(resp); ok {
		if cards := studyhall.NormalizeFlashcards(v); len(cards) > 0 {
			return &studyhall.FlashcardResult{
				Kind: studyhall.ResultParsed,
				Set:  &studyhall.FlashcardSet{Flashcards: cards},
			}, nil
		}
	}

	if text := ResponseText(resp); text != "" {
		return &studyhall.FlashcardResult{Kind: studyhall.ResultRaw, Raw: text}, nil
	}
	return &studyhall.FlashcardResult{Kind: studyhall.ResultUnparseable}, nil
}

// StudyPlan returns a week-long study plan as text. The model may
// reply with markdown or a structured value; normalization happens at
// the presentation boundary, not here.
func (g *Generator) StudyPlan(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", studyhall.Errorf(studyhall.EINVALID, "study content required")
	}

	resp, err := g.generate(ctx, StudyPlanPrompt(content), BuildConfig())
	if err != nil {
		return "", studyhall.Errorf(studyhall.EUNAVAILABLE, "failed to generate study plan: %v", err)
	}
	return ResponseText(resp), nil
}

// generate makes a single GenerateContent call.
func (g *Generator) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("gemini returned nil response")
	}
	return resp, nil
}

// generateWithFallback tries a schema-constrained call first and
// repeats the request unconstrained when the constrained call fails.
func (g *Generator) generateWithFallback(ctx context.Context, prompt string, schema *genai.Schema) (*genai.GenerateContentResponse, error) {
	resp, err := g.generate(ctx, prompt, BuildStructuredConfig(schema))
	if err == nil {
		return resp, nil
	}
	return g.generate(ctx, prompt, BuildConfig())
}

// BuildConfig returns the GenerateContentConfig for unconstrained
// calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// BuildStructuredConfig constrains the reply to JSON matching the schema.
func BuildStructuredConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	config := BuildConfig()
	config.ResponseMIMEType = "application/json"
	config.ResponseSchema = schema
	return config
}

func quizSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"quiz_title": {Type: genai.TypeString},
			"questions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"question":       {Type: genai.TypeString},
						"options":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"correct_answer": {Type: genai.TypeString},
						"explanation":    {Type: genai.TypeString},
					},
					Required: []string{"question", "options", "correct_answer"},
				},
			},
		},
		Required: []string{"quiz_title", "questions"},
	}
}

func flashcardSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"flashcards": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"front": {Type: genai.TypeString},
						"back":  {Type: genai.TypeString},
					},
					Required: []string{"front", "back"},
				},
			},
		},
		Required: []string{"flashcards"},
	}
}
