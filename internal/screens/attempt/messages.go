package attempt

import "github.com/abhisek/quizgen/internal/quiz"

// quizReadyMsg carries the generated quiz, or the reason there is none.
type quizReadyMsg struct {
	Quiz *quiz.Quiz
	Err  error
}
