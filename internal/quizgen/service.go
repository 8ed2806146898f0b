package quizgen

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// Service produces complete quizzes. It prefers the LLM generator when one
// is configured and falls back to the template banks otherwise.
type Service struct {
	primary  Generator
	fallback Generator
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a Service. primary may be nil, in which case every
// quiz comes from fallback.
func NewService(primary, fallback Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fallback == nil {
		fallback = NewFallbackGenerator()
	}
	return &Service{
		primary:  primary,
		fallback: fallback,
		logger:   logger.Named("quizgen"),
		now:      time.Now,
	}
}

// HasLLM reports whether an LLM generator is configured.
func (s *Service) HasLLM() bool {
	return s.primary != nil
}

// Generate builds a quiz for settings. It only fails when the fallback
// generator fails or ctx is cancelled.
func (s *Service) Generate(ctx context.Context, settings quiz.Settings) (*quiz.Quiz, error) {
	settings = settings.Normalize()
	q := &quiz.Quiz{
		ID:        uuid.NewString(),
		Settings:  settings,
		CreatedAt: s.now().UTC(),
	}

	if s.primary != nil {
		start := time.Now()
		questions, err := s.primary.Generate(llm.WithQuizID(ctx, q.ID), settings)
		if err == nil {
			s.logger.Info("quiz generated",
				zap.String("quiz_id", q.ID),
				zap.String("source", string(quiz.SourceLLM)),
				zap.String("subject", settings.Subject),
				zap.Int("questions", len(questions)),
				zap.Duration("elapsed", time.Since(start)),
			)
			q.Questions = questions
			q.Source = quiz.SourceLLM
			return q, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.Warn("LLM generation failed, using fallback bank",
			zap.String("quiz_id", q.ID),
			zap.String("subject", settings.Subject),
			zap.String("reason", llm.Reason(err)),
			zap.Error(err),
		)
	}

	questions, err := s.fallback.Generate(ctx, settings)
	if err != nil {
		return nil, err
	}
	s.logger.Info("quiz generated",
		zap.String("quiz_id", q.ID),
		zap.String("source", string(quiz.SourceFallback)),
		zap.String("subject", settings.Subject),
		zap.Int("questions", len(questions)),
	)
	q.Questions = questions
	q.Source = quiz.SourceFallback
	return q, nil
}
