package llm

import "context"

type contextKey int

const (
	purposeKey contextKey = iota
	quizIDKey
)

// WithPurpose labels LLM calls made with ctx, e.g. "quiz-generate".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// WithQuizID ties LLM calls made with ctx to the quiz they generate, so the
// audit log can be joined against recorded results.
func WithQuizID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, quizIDKey, id)
}

// QuizIDFrom returns the quiz ID attached to ctx, or "".
func QuizIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(quizIDKey).(string)
	return v
}
