package quizgen

import (
	"fmt"

	"github.com/abhisek/quizgen/internal/quiz"
)

const systemPrompt = `You are an experienced educator writing multiple-choice quizzes.
Every question has exactly four options labeled A, B, C and D, and exactly one of them is correct.
Match the requested level and difficulty. Do not add commentary before or after the quiz.`

// BuildPrompt returns the free-text prompt that asks for n numbered
// questions in the format ParseLLMOutput understands.
func BuildPrompt(settings quiz.Settings) string {
	s := settings.Normalize()
	return fmt.Sprintf(`You will generate %d multiple-choice questions on the subject: %s.
Level: %s. Difficulty: %s.
Format the output strictly like:
1. Question text?
A: option text
B: option text
C: option text
D: option text
Answer: B

Repeat for 1..%d. Ensure exactly one correct option (A/B/C/D) per question.
`, s.NumQuestions, s.Subject, s.Level, s.Difficulty, s.NumQuestions)
}

// buildStructuredPrompt asks for the same quiz as JSON matching QuizSchema.
func buildStructuredPrompt(settings quiz.Settings) string {
	s := settings.Normalize()
	return fmt.Sprintf(`Generate %d multiple-choice questions on the subject: %s.
Level: %s. Difficulty: %s.
Each question has four options prefixed "A: ", "B: ", "C: " and "D: ", and an answer letter.
Ensure exactly one correct option per question.`, s.NumQuestions, s.Subject, s.Level, s.Difficulty)
}
