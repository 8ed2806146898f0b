package quizgen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/abhisek/quizgen/internal/quiz"
)

// ParseLLMOutput turns free-form numbered quiz text into questions.
//
// A line whose first character is a digit and whose first three characters
// contain '.' or ')' starts a question. Lines beginning with "A:" to "D:"
// are options, kept verbatim. Lines beginning with ANSWER or CORRECT set the
// answer to the first token after the colon. Other lines extend the question
// text until its first option arrives. Options and answers that appear
// before any question are dropped.
//
// The first n questions are returned (all of them when n <= 0). Options are
// padded with "X: Option k" fillers up to four and cut to four; a missing
// answer becomes "A".
func ParseLLMOutput(text string, n int) []quiz.Question {
	type draft struct {
		text    string
		options []string
		answer  string
	}

	var (
		drafts []*draft
		cur    *draft
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)

		switch {
		case isQuestionStart(line):
			cur = &draft{text: questionText(line)}
			drafts = append(drafts, cur)

		case isOptionLine(upper):
			if cur != nil {
				cur.options = append(cur.options, line)
			}

		case strings.HasPrefix(upper, "ANSWER") || strings.HasPrefix(upper, "CORRECT"):
			if cur != nil {
				if ans := answerToken(line); ans != "" {
					cur.answer = ans
				}
			}

		default:
			if cur != nil && len(cur.options) == 0 {
				cur.text = strings.TrimSpace(cur.text + " " + line)
			}
		}
	}

	if n > 0 && len(drafts) > n {
		drafts = drafts[:n]
	}

	out := make([]quiz.Question, 0, len(drafts))
	for _, d := range drafts {
		opts := d.options
		for len(opts) < len(quiz.Labels) {
			opts = append(opts, fmt.Sprintf("X: Option %d", len(opts)+1))
		}
		ans := d.answer
		if ans == "" {
			ans = quiz.Labels[0]
		}
		out = append(out, quiz.Question{
			Text:    d.text,
			Options: opts[:len(quiz.Labels)],
			Answer:  ans,
		})
	}
	return out
}

func isQuestionStart(line string) bool {
	if line == "" || !unicode.IsDigit(rune(line[0])) {
		return false
	}
	return strings.ContainsAny(prefix(line, 3), ".)")
}

// questionText strips the leading number and its '.' or ')' marker.
func questionText(line string) string {
	idx := strings.IndexAny(prefix(line, 3), ".)")
	return strings.TrimSpace(line[idx+1:])
}

func isOptionLine(upper string) bool {
	for _, l := range quiz.Labels {
		if strings.HasPrefix(upper, l+":") {
			return true
		}
	}
	return false
}

// answerToken returns the first word after the first ':' with surrounding
// punctuation removed and upper-cased, so "Answer: (b)." yields "B".
func answerToken(line string) string {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	tok := strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToUpper(tok)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
