// Package quizgen produces multiple-choice quizzes, either from an LLM or
// from the built-in template banks when no model is available.
package quizgen

import (
	"context"

	"github.com/abhisek/quizgen/internal/quiz"
)

// Generator produces the questions for one quiz.
type Generator interface {
	// Generate returns exactly settings.NumQuestions questions, or an error.
	Generate(ctx context.Context, settings quiz.Settings) ([]quiz.Question, error)
}
