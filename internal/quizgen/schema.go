package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// QuizSchema defines the JSON schema for structured quiz responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of multiple-choice questions with four options each",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the participant",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly four options, each prefixed with its label, e.g. \"A: tuple\"",
						},
						"answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "Letter of the single correct option",
						},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// quizOutput is the raw structured response before validation.
type quizOutput struct {
	Questions []quiz.Question `json:"questions"`
}

// decodeStructured validates raw against QuizSchema and converts it to
// questions, adding missing "A: " style prefixes to options.
func decodeStructured(raw json.RawMessage) ([]quiz.Question, error) {
	if err := llm.ValidateJSON(QuizSchema, raw); err != nil {
		return nil, err
	}

	var out quizOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	for i := range out.Questions {
		q := &out.Questions[i]
		q.Text = strings.TrimSpace(q.Text)
		for j, opt := range q.Options {
			opt = strings.TrimSpace(opt)
			if j < len(quiz.Labels) && !strings.HasPrefix(strings.ToUpper(opt), quiz.Labels[j]+":") {
				opt = quiz.Labels[j] + ": " + opt
			}
			q.Options[j] = opt
		}
	}
	return out.Questions, nil
}
