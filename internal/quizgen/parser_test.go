package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = `
1. Which data type is immutable in Python?
A: list
B: dict
C: tuple
D: set
Answer: C

2) What keyword defines a function?
A: func
B: def
C: function
D: lambda
Answer: B
`

func TestParseLLMOutput_WellFormed(t *testing.T) {
	qs := ParseLLMOutput(wellFormed, 10)
	require.Len(t, qs, 2)

	assert.Equal(t, "Which data type is immutable in Python?", qs[0].Text)
	assert.Equal(t, []string{"A: list", "B: dict", "C: tuple", "D: set"}, qs[0].Options)
	assert.Equal(t, "C", qs[0].Answer)

	assert.Equal(t, "What keyword defines a function?", qs[1].Text)
	assert.Equal(t, "B", qs[1].Answer)
}

func TestParseLLMOutput_KeepsFirstN(t *testing.T) {
	qs := ParseLLMOutput(wellFormed, 1)
	require.Len(t, qs, 1)
	assert.Equal(t, "C", qs[0].Answer)

	all := ParseLLMOutput(wellFormed, 0)
	assert.Len(t, all, 2)
}

func TestParseLLMOutput_PadsAndTruncatesOptions(t *testing.T) {
	text := `1. Short question?
A: one
B: two
Answer: B
2. Long question?
A: a
B: b
C: c
D: d
D: extra
Answer: A`

	qs := ParseLLMOutput(text, 10)
	require.Len(t, qs, 2)
	assert.Equal(t, []string{"A: one", "B: two", "X: Option 3", "X: Option 4"}, qs[0].Options)
	assert.Equal(t, []string{"A: a", "B: b", "C: c", "D: d"}, qs[1].Options)
}

func TestParseLLMOutput_MissingAnswerDefaultsToA(t *testing.T) {
	qs := ParseLLMOutput("1. Q?\nA: a\nB: b\nC: c\nD: d", 10)
	require.Len(t, qs, 1)
	assert.Equal(t, "A", qs[0].Answer)

	qs = ParseLLMOutput("1. Q?\nA: a\nAnswer:", 10)
	require.Len(t, qs, 1)
	assert.Equal(t, "A", qs[0].Answer, "empty answer value keeps the default")
}

func TestParseLLMOutput_AnswerVariants(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Answer: B", "B"},
		{"ANSWER: c", "C"},
		{"answer: (d).", "D"},
		{"Correct answer: A", "A"},
		{"Correct: B) def f():", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			qs := ParseLLMOutput("1. Q?\nA: a\nB: b\nC: c\nD: d\n"+tt.line, 10)
			require.Len(t, qs, 1)
			assert.Equal(t, tt.want, qs[0].Answer)
		})
	}
}

func TestParseLLMOutput_MultiLineQuestion(t *testing.T) {
	text := `1. Consider the following code:
x = (1, 2)
What is its type?
A: list
B: tuple
C: dict
D: set
Answer: B
This trailing note is ignored.`

	qs := ParseLLMOutput(text, 10)
	require.Len(t, qs, 1)
	assert.Equal(t, "Consider the following code: x = (1, 2) What is its type?", qs[0].Text)
}

func TestParseLLMOutput_IgnoresPreamble(t *testing.T) {
	text := `Here is your quiz!
A: stray option
Answer: D
1. Real question?
A: a
B: b
C: c
D: d
Answer: C`

	qs := ParseLLMOutput(text, 10)
	require.Len(t, qs, 1)
	assert.Equal(t, "Real question?", qs[0].Text)
	assert.Equal(t, "C", qs[0].Answer)
	assert.Equal(t, "A: a", qs[0].Options[0])
}

func TestParseLLMOutput_Empty(t *testing.T) {
	assert.Empty(t, ParseLLMOutput("", 10))
	assert.Empty(t, ParseLLMOutput("no numbered lines here\nat all", 10))
}

func TestParseLLMOutput_LowercaseOptionsKeptVerbatim(t *testing.T) {
	qs := ParseLLMOutput("10. Tenth?\na: lower\nb: case\nc: opt\nd: ions\nAnswer: a", 10)
	require.Len(t, qs, 1)
	assert.Equal(t, "Tenth?", qs[0].Text)
	assert.Equal(t, "a: lower", qs[0].Options[0])
	assert.Equal(t, "A", qs[0].Answer)
}
