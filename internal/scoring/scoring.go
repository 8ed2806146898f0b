// Package scoring turns a quiz attempt into a score.
package scoring

import (
	"math/rand/v2"
	"sync"

	"github.com/abhisek/quizgen/internal/quiz"
)

// Result is a scored attempt.
type Result struct {
	Score int
	Total int
}

// Scorer scores an attempt.
type Scorer interface {
	Score(a *quiz.Attempt) Result
}

// MockScorer returns a random score between half the question count
// (rounded up) and the full count. Answers are not inspected.
type MockScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockScorer creates a MockScorer. A nil rng uses a randomly seeded
// source.
func NewMockScorer(rng *rand.Rand) *MockScorer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &MockScorer{rng: rng}
}

func (s *MockScorer) Score(a *quiz.Attempt) Result {
	total := 0
	if a != nil && a.Quiz != nil {
		total = len(a.Quiz.Questions)
	}
	if total == 0 {
		return Result{}
	}

	low := (total + 1) / 2
	s.mu.Lock()
	score := low + s.rng.IntN(total-low+1)
	s.mu.Unlock()

	return Result{Score: score, Total: total}
}
