// Package slog provides logging decorators for studyhall services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"studyhall"
)

// Ensure LoggingGenerator implements studyhall.Generator.
var _ studyhall.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with operation logging.
type LoggingGenerator struct {
	next   studyhall.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next studyhall.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Summary delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Summary(ctx context.Context, content string) (summary string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("summary generation",
			"content_bytes", len(content),
			"reply_bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Summary(ctx, content)
}

// Quiz delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Quiz(ctx context.Context, content string) (result *studyhall.QuizResult, err error) {
	defer func(begin time.Time) {
		g.logger.Info("quiz generation",
			"content_bytes", len(content),
			"result", resultKindName(quizKind(result)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Quiz(ctx, content)
}

// Flashcards delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Flashcards(ctx context.Context, content string) (result *studyhall.FlashcardResult, err error) {
	defer func(begin time.Time) {
		g.logger.Info("flashcard generation",
			"content_bytes", len(content),
			"result", resultKindName(flashcardKind(result)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Flashcards(ctx, content)
}

// StudyPlan delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) StudyPlan(ctx context.Context, content string) (plan string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("study plan generation",
			"content_bytes", len(content),
			"reply_bytes", len(plan),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.StudyPlan(ctx, content)
}

func quizKind(result *studyhall.QuizResult) studyhall.ResultKind {
	if result == nil {
		return studyhall.ResultUnparseable
	}
	return result.Kind
}

func flashcardKind(result *studyhall.FlashcardResult) studyhall.ResultKind {
	if result == nil {
		return studyhall.ResultUnparseable
	}
	return result.Kind
}

func resultKindName(kind studyhall.ResultKind) string {
	switch kind {
	case studyhall.ResultParsed:
		return "parsed"
	case studyhall.ResultRaw:
		return "raw"
	default:
		return "unparseable"
	}
}
