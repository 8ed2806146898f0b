package quizgen

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/abhisek/quizgen/internal/quiz"
)

// FallbackGenerator builds quizzes from the hardcoded template banks. It
// never fails and needs no network.
type FallbackGenerator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	extended bool
}

// FallbackOption configures a FallbackGenerator.
type FallbackOption func(*FallbackGenerator)

// WithRand sets the random source used to pick templates.
func WithRand(r *rand.Rand) FallbackOption {
	return func(g *FallbackGenerator) { g.rng = r }
}

// WithExtendedBanks enables the per-subject banks for AI, Data Science,
// Math and C++ in place of the generic templates.
func WithExtendedBanks(on bool) FallbackOption {
	return func(g *FallbackGenerator) { g.extended = on }
}

// NewFallbackGenerator creates a FallbackGenerator.
func NewFallbackGenerator(opts ...FallbackOption) *FallbackGenerator {
	g := &FallbackGenerator{}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Generate picks a random template for each question and substitutes the
// subject into it.
func (g *FallbackGenerator) Generate(_ context.Context, settings quiz.Settings) ([]quiz.Question, error) {
	settings = settings.Normalize()
	bank := g.bankFor(settings.Subject)

	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]quiz.Question, settings.NumQuestions)
	for i := range out {
		t := bank[g.rng.IntN(len(bank))]
		out[i] = t.render(settings.Subject)
	}
	return out, nil
}

// bankFor returns the template bank used for subject.
func (g *FallbackGenerator) bankFor(subject string) []Template {
	if isPythonFamily(subject) {
		return pythonTemplates
	}
	if g.extended {
		if bank, ok := extendedTemplates[strings.ToLower(strings.TrimSpace(subject))]; ok {
			return bank
		}
	}
	return genericTemplates
}

func (t Template) render(subject string) quiz.Question {
	opts := make([]string, len(t.Options))
	for i, o := range t.Options {
		opts[i] = strings.ReplaceAll(o, "{s}", subject)
	}
	return quiz.Question{
		Text:    strings.ReplaceAll(t.Text, "{s}", subject),
		Options: opts,
		Answer:  t.Answer,
	}
}
