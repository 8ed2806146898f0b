package quizgen

import (
	"strings"

	"github.com/abhisek/quizgen/internal/quiz"
)

// dedupQuestions drops questions whose text repeats an earlier one,
// ignoring case and surrounding whitespace. Order is preserved.
func dedupQuestions(qs []quiz.Question) []quiz.Question {
	seen := make(map[string]bool, len(qs))
	out := qs[:0:0]
	for _, q := range qs {
		key := strings.ToLower(strings.Join(strings.Fields(q.Text), " "))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}
