package quizgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/quiz"
)

// Validator checks a generated question for usability.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *quiz.Question, settings quiz.Settings) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// runValidators applies each validator in order and stops at the first
// failure.
func runValidators(q *quiz.Question, settings quiz.Settings, validators []Validator) *ValidationError {
	for _, v := range validators {
		if verr := v.Validate(q, settings); verr != nil {
			return verr
		}
	}
	return nil
}
