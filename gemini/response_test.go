package gemini_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/genai"

	"studyhall"
	"studyhall/gemini"
)

func replyWithText(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func TestResponseText_FirstTextPartOfFirstCandidate(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "first"}, {Text: "second"}}}},
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "other candidate"}}}},
		},
	}

	assert.Equal(t, "first", gemini.ResponseText(resp))
}

func TestResponseText_SkipsEmptyParts(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: ""}, {Text: "payload"}}},
		}},
	}

	assert.Equal(t, "payload", gemini.ResponseText(resp))
}

func TestResponseText_StringifiesReplyWithoutText(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{ModelVersion: "m"}

	out := gemini.ResponseText(resp)

	assert.NotEmpty(t, out, "last resort must still yield something renderable")
}

func TestResponseText_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, gemini.ResponseText(nil))
}

func TestResponseStructured_ParsesRawJSONText(t *testing.T) {
	t.Parallel()

	v, ok := gemini.ResponseStructured(replyWithText(`{"quiz_title":"T","questions":[]}`))

	require.True(t, ok)
	assert.Equal(t, map[string]any{"quiz_title": "T", "questions": []any{}}, v)
}

func TestResponseStructured_StripsCodeFences(t *testing.T) {
	t.Parallel()

	v, ok := gemini.ResponseStructured(replyWithText("```json\n{\"quiz_title\":\"T\",\"questions\":[]}\n```"))

	require.True(t, ok)
	assert.Equal(t, "T", v.(map[string]any)["quiz_title"])
}

func TestResponseStructured_TrimsSurroundingProse(t *testing.T) {
	t.Parallel()

	v, ok := gemini.ResponseStructured(replyWithText(`Here is your quiz: {"questions":[]} Enjoy!`))

	require.True(t, ok)
	assert.Contains(t, v, "questions")
}

func TestResponseStructured_BareArray(t *testing.T) {
	t.Parallel()

	v, ok := gemini.ResponseStructured(replyWithText(`[{"question":"Q"}]`))

	require.True(t, ok)
	require.IsType(t, []any{}, v)
}

func TestResponseStructured_UnparseableTextIsNil(t *testing.T) {
	t.Parallel()

	v, ok := gemini.ResponseStructured(replyWithText("not json"))

	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestResponseStructured_NoCandidates(t *testing.T) {
	t.Parallel()

	_, ok := gemini.ResponseStructured(&genai.GenerateContentResponse{})

	assert.False(t, ok)
}

func TestUnparseableReplyDegradesToRawDisplay(t *testing.T) {
	t.Parallel()

	resp := replyWithText("not json")

	_, ok := gemini.ResponseStructured(resp)
	require.False(t, ok)

	// The UI falls back to the raw string rather than failing.
	cards := studyhall.NormalizeFlashcards(gemini.ResponseText(resp))
	require.Len(t, cards, 1)
	assert.Equal(t, "not json", cards[0].Front)
}
