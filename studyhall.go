// Package studyhall provides a study-assistant tool. It extracts plain
// text from study material (local documents or web pages) and uses a
// generative model to produce summaries, multiple-choice quizzes,
// flashcard decks, and study plans, then grades quiz attempts.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., gemini/,
// goquery/, excelize/).
package studyhall
