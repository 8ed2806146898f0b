package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/quiz"
)

const maxQuestionLen = 500

// StructuralValidator checks that a question has text, four labeled
// options and an answer letter.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Question, _ quiz.Settings) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	text := strings.TrimSpace(q.Text)
	if text == "" {
		return fail("question text is empty")
	}
	if len(text) > maxQuestionLen {
		return fail(fmt.Sprintf("question text exceeds %d characters", maxQuestionLen))
	}
	if len(q.Options) != len(quiz.Labels) {
		return fail(fmt.Sprintf("expected %d options, got %d", len(quiz.Labels), len(q.Options)))
	}
	for i, opt := range q.Options {
		if len(opt) < 2 || opt[1] != ':' {
			return fail(fmt.Sprintf("option %d has no label prefix", i+1))
		}
		if quiz.OptionText(opt) == "" {
			return fail(fmt.Sprintf("option %d is empty", i+1))
		}
	}
	if quiz.LabelIndex(q.Answer) < 0 {
		return fail(fmt.Sprintf("answer %q is not one of A-D", q.Answer))
	}
	return nil
}

// DistinctOptionsValidator rejects questions whose options repeat, which
// leaves more than one plausible correct choice.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q *quiz.Question, _ quiz.Settings) *ValidationError {
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		key := strings.ToLower(quiz.OptionText(opt))
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", quiz.OptionText(opt)),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}
