package quizgen

import (
	"context"
	"fmt"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// Purpose label attached to quiz generation requests in the LLM audit log.
const PurposeGenerate = "quiz-generate"

// ShortfallError reports that the model produced fewer usable questions
// than requested.
type ShortfallError struct {
	Want, Got int

	// First is the first validation failure seen, if any.
	First *ValidationError
}

func (e *ShortfallError) Error() string {
	msg := fmt.Sprintf("LLM produced %d usable questions, want %d", e.Got, e.Want)
	if e.First != nil {
		msg += " (" + e.First.Error() + ")"
	}
	return msg
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates a new LLMGenerator with the given provider and config.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate asks the model for a quiz and returns the first
// settings.NumQuestions questions that pass every validator.
func (g *LLMGenerator) Generate(ctx context.Context, settings quiz.Settings) ([]quiz.Question, error) {
	settings = settings.Normalize()
	ctx = llm.WithPurpose(ctx, PurposeGenerate)

	req := llm.Request{
		System:      systemPrompt,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
	if g.config.Structured {
		req.Schema = QuizSchema
		req.Messages = []llm.Message{{Role: llm.RoleUser, Content: buildStructuredPrompt(settings)}}
	} else {
		req.Messages = []llm.Message{{Role: llm.RoleUser, Content: BuildPrompt(settings)}}
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var parsed []quiz.Question
	if g.config.Structured {
		parsed, err = decodeStructured(resp.Content)
		if err != nil {
			return nil, err
		}
	} else {
		parsed = ParseLLMOutput(resp.Text(), 0)
	}

	var (
		valid []quiz.Question
		first *ValidationError
	)
	for _, q := range dedupQuestions(parsed) {
		if verr := runValidators(&q, settings, g.config.Validators); verr != nil {
			if first == nil {
				first = verr
			}
			continue
		}
		valid = append(valid, q)
	}

	if len(valid) < settings.NumQuestions {
		return nil, &ShortfallError{Want: settings.NumQuestions, Got: len(valid), First: first}
	}
	return valid[:settings.NumQuestions], nil
}
