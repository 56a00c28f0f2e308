package main

import (
	"context"
	"io"

	"studyhall"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Router    *studyhall.Router
	Generator studyhall.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Summary    SummaryCmd    `cmd:"" help:"Summarize study material"`
	Quiz       QuizCmd       `cmd:"" help:"Generate and take a multiple-choice quiz"`
	Flashcards FlashcardsCmd `cmd:"" help:"Generate key-term flashcards"`
	Plan       PlanCmd       `cmd:"" help:"Generate a week-long study plan"`

	Verbose bool `short:"v" help:"Log operations to stderr"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	Source string `arg:"" help:"File path or URL of the study material"`
}

// QuizCmd is the "quiz" subcommand.
type QuizCmd struct {
	Source string   `arg:"" help:"File path or URL of the study material"`
	Answer []string `short:"a" help:"Answer per question in order (letter or option number); omit to answer interactively"`
}

// FlashcardsCmd is the "flashcards" subcommand.
type FlashcardsCmd struct {
	Source string `arg:"" help:"File path or URL of the study material"`
	Reveal bool   `short:"r" help:"Show the back of each card"`
}

// PlanCmd is the "plan" subcommand.
type PlanCmd struct {
	Source string `arg:"" help:"File path or URL of the study material"`
}
