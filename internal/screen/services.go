package screen

import (
	"context"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/scoring"
	"github.com/abhisek/quizgen/internal/store"
)

// QuizSource produces a quiz for the chosen settings.
type QuizSource interface {
	Generate(ctx context.Context, settings quiz.Settings) (*quiz.Quiz, error)
}

// Services bundles the dependencies shared by the quiz screens. EventRepo
// may be nil, in which case history falls back to the results CSV.
type Services struct {
	Quizzes    QuizSource
	Scorer     scoring.Scorer
	Recorder   *results.Recorder
	EventRepo  store.EventRepo
	Defaults   quiz.Settings
	ReportFile string
}
