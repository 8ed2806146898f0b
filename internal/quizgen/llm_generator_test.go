package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
)

// numberedQuiz renders n well-formed questions in the prompt's format.
func numberedQuiz(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d. Question number %d?\nA: alpha %d\nB: beta %d\nC: gamma %d\nD: delta %d\nAnswer: %s\n\n",
			i, i, i, i, i, i, quiz.Labels[i%4])
	}
	return b.String()
}

func TestLLMGenerator_TextMode(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(numberedQuiz(12)))
	g := NewLLMGenerator(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), quiz.Settings{Subject: "Python", NumQuestions: 10})
	require.NoError(t, err)
	require.Len(t, qs, 10)
	assert.Equal(t, "Question number 1?", qs[0].Text)
	assert.Equal(t, "B", qs[0].Answer)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Nil(t, req.Schema)
	assert.Equal(t, 900, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Contains(t, req.Messages[0].Content, "on the subject: Python")
}

func TestLLMGenerator_Shortfall(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(numberedQuiz(3)))
	g := NewLLMGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), quiz.Settings{Subject: "AI", NumQuestions: 5})
	var short *ShortfallError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 5, short.Want)
	assert.Equal(t, 3, short.Got)
}

func TestLLMGenerator_DropsInvalidAndDuplicates(t *testing.T) {
	text := numberedQuiz(2) + `3. Question number 1?
A: again
B: and
C: again
D: x
Answer: A
4. Broken answer?
A: a
B: b
C: c
D: d
Answer: Z
`
	mock := llm.NewMockProvider(llm.TextResponse(text))
	g := NewLLMGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), quiz.Settings{Subject: "AI", NumQuestions: 3})
	var short *ShortfallError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 2, short.Got)
	require.NotNil(t, short.First)
	assert.Equal(t, "structural", short.First.Validator)
}

func TestLLMGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	g := NewLLMGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), quiz.Settings{Subject: "Math"})
	var unavail *llm.ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
}

func TestLLMGenerator_StructuredMode(t *testing.T) {
	payload := map[string]any{
		"questions": []map[string]any{
			{"question": "Q1?", "options": []string{"A: a", "B: b", "C: c", "D: d"}, "answer": "D"},
			{"question": "Q2?", "options": []string{"one", "two", "three", "four"}, "answer": "A"},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	cfg := DefaultConfig()
	cfg.Structured = true
	g := NewLLMGenerator(mock, cfg)

	qs, err := g.Generate(context.Background(), quiz.Settings{Subject: "Math", NumQuestions: 2})
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "D", qs[0].Answer)
	assert.Equal(t, []string{"A: one", "B: two", "C: three", "D: four"}, qs[1].Options)
	assert.Same(t, QuizSchema, mock.Calls[0].Schema)
}

func TestLLMGenerator_StructuredModeRejectsBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[{"question":"Q","options":["A: a"],"answer":"A"}]}`)})
	cfg := DefaultConfig()
	cfg.Structured = true
	g := NewLLMGenerator(mock, cfg)

	_, err := g.Generate(context.Background(), quiz.Settings{Subject: "Math", NumQuestions: 1})
	var inv *llm.ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestLLMGenerator_SetsPurpose(t *testing.T) {
	rec := &purposeRecorder{}
	g := NewLLMGenerator(rec, DefaultConfig())
	_, _ = g.Generate(context.Background(), quiz.Settings{NumQuestions: 1})
	assert.Equal(t, PurposeGenerate, rec.purpose)
}

type purposeRecorder struct{ purpose string }

func (p *purposeRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.purpose = llm.PurposeFrom(ctx)
	return &llm.Response{Content: json.RawMessage(numberedQuiz(1))}, nil
}

func (p *purposeRecorder) ModelID() string { return "recorder" }
