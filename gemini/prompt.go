package gemini

import (
	"fmt"
	"strings"

	"studyhall"
)

// material wraps the study content in delimiters so instructions and
// source text stay separable for the model.
func material(content string) string {
	var sb strings.Builder
	sb.WriteString("STUDY MATERIAL:\n---\n")
	sb.WriteString(content)
	sb.WriteString("\n---\n")
	return sb.String()
}

// SummaryPrompt builds the prompt for a markdown summary.
func SummaryPrompt(content string) string {
	return "You are an expert study assistant. Provide a concise, well-structured markdown summary of the study material below.\n\n" +
		material(content)
}

// QuizPrompt builds the prompt for a multiple-choice quiz, stating
// the question/option counts and the reply contract.
func QuizPrompt(content string) string {
	return fmt.Sprintf(
		"You are an expert test creator. Create exactly %d high-quality multiple-choice questions about the study material below, each with exactly %d options. "+
			"Respond with JSON: {\"quiz_title\": string, \"questions\": [{\"question\": string, \"options\": [string], \"correct_answer\": string, \"explanation\": string}]}. "+
			"The correct_answer must repeat one of the options verbatim.\n\n%s",
		studyhall.QuizQuestionCount, studyhall.QuizOptionCount, material(content))
}

// FlashcardPrompt builds the prompt for a term/definition deck.
func FlashcardPrompt(content string) string {
	return fmt.Sprintf(
		"You are a flashcard expert. Create exactly %d key-term flashcards from the study material below. "+
			"Respond with JSON: {\"flashcards\": [{\"front\": string, \"back\": string}]}. "+
			"The front is a term or question, the back its definition or answer.\n\n%s",
		studyhall.FlashcardCount, material(content))
}

// StudyPlanPrompt builds the prompt for the week-long study plan.
func StudyPlanPrompt(content string) string {
	return fmt.Sprintf(
		"You are a professional study strategist. Create a structured %d-day study plan in markdown that systematically covers the study material below.\n\n%s",
		studyhall.StudyPlanDays, material(content))
}
