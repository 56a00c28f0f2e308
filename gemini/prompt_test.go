package gemini_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"google.golang.org/genai"

	"studyhall"
	"studyhall/gemini"
)

func TestPrompts_WrapMaterialInDelimiters(t *testing.T) {
	t.Parallel()

	for name, build := range map[string]func(string) string{
		"summary":    gemini.SummaryPrompt,
		"quiz":       gemini.QuizPrompt,
		"flashcards": gemini.FlashcardPrompt,
		"plan":       gemini.StudyPlanPrompt,
	} {
		prompt := build("cell biology notes")
		assert.Contains(t, prompt, "STUDY MATERIAL:\n---\ncell biology notes\n---\n", name)
	}
}

func TestQuizPrompt_StatesContract(t *testing.T) {
	t.Parallel()

	prompt := gemini.QuizPrompt("notes")

	assert.Contains(t, prompt, strconv.Itoa(studyhall.QuizQuestionCount)+" high-quality multiple-choice questions")
	assert.Contains(t, prompt, strconv.Itoa(studyhall.QuizOptionCount)+" options")
	assert.Contains(t, prompt, `"correct_answer"`)
	assert.Contains(t, prompt, "verbatim")
}

func TestFlashcardPrompt_StatesCount(t *testing.T) {
	t.Parallel()

	assert.Contains(t, gemini.FlashcardPrompt("notes"), strconv.Itoa(studyhall.FlashcardCount)+" key-term flashcards")
}

func TestStudyPlanPrompt_StatesDays(t *testing.T) {
	t.Parallel()

	assert.Contains(t, gemini.StudyPlanPrompt("notes"), strconv.Itoa(studyhall.StudyPlanDays)+"-day study plan")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
	assert.Empty(t, config.ResponseMIMEType)
}

func TestBuildStructuredConfig_ConstrainsToJSON(t *testing.T) {
	t.Parallel()

	schema := &genai.Schema{Type: genai.TypeObject}
	config := gemini.BuildStructuredConfig(schema)

	assert.Equal(t, "application/json", config.ResponseMIMEType)
	assert.Equal(t, schema, config.ResponseSchema)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}
