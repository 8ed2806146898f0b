package results

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/scoring"
	"github.com/abhisek/quizgen/internal/store"
)

// Recorder persists scored attempts. The CSV row is the record of truth;
// the event store copy feeds the history views and may be nil.
type Recorder struct {
	file   string
	repo   store.EventRepo
	logger *zap.Logger
}

// NewRecorder creates a Recorder appending to file. An empty file means
// DefaultFile.
func NewRecorder(file string, repo store.EventRepo, logger *zap.Logger) *Recorder {
	if file == "" {
		file = DefaultFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{file: file, repo: repo, logger: logger.Named("results")}
}

// File returns the CSV path rows are appended to.
func (r *Recorder) File() string {
	return r.file
}

// Record appends the attempt's row to the results file and mirrors it into
// the event store. A store failure is logged, not returned.
func (r *Recorder) Record(ctx context.Context, a *quiz.Attempt, res scoring.Result) (Record, error) {
	if a == nil || a.Quiz == nil {
		return Record{}, fmt.Errorf("record result: no quiz attempt")
	}
	rec := NewRecord(a.Participant, a.Quiz.Settings, res.Score)
	if err := Append(r.file, rec); err != nil {
		return rec, err
	}

	if r.repo != nil {
		err := r.repo.AppendQuizResult(ctx, store.QuizResultEventData{
			QuizID:     a.Quiz.ID,
			Name:       a.Participant.Name,
			Email:      a.Participant.Email,
			StudentID:  a.Participant.StudentID,
			Subject:    a.Quiz.Settings.Subject,
			Level:      a.Quiz.Settings.Level,
			Difficulty: a.Quiz.Settings.Difficulty,
			Score:      res.Score,
			Total:      res.Total,
			Answers:    a.AnswerString(),
			Source:     string(a.Quiz.Source),
		})
		if err != nil {
			r.logger.Warn("failed to store quiz result", zap.String("quiz_id", a.Quiz.ID), zap.Error(err))
		}
	}

	r.logger.Info("quiz result recorded",
		zap.String("quiz_id", a.Quiz.ID),
		zap.String("student_id", a.Participant.StudentID),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
	)
	return rec, nil
}
