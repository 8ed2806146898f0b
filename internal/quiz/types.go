package quiz

import (
	"errors"
	"strings"
	"time"
)

// DefaultNumQuestions is the number of questions in a quiz when the caller
// does not ask for a specific count.
const DefaultNumQuestions = 10

// Catalogs offered by the setup form.
var (
	Subjects     = []string{"Python", "AI", "Data Science", "Math", "C++"}
	Levels       = []string{"Beginner", "Intermediate", "Advanced"}
	Difficulties = []string{"Easy", "Medium", "Hard"}
)

// Labels are the option letters, in display order.
var Labels = []string{"A", "B", "C", "D"}

// ErrMissingDetails is returned when a participant has not filled in all of
// their details.
var ErrMissingDetails = errors.New("Please enter your details first.")

// Participant identifies the person taking the quiz.
type Participant struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
}

// Validate returns ErrMissingDetails if any field is blank.
func (p Participant) Validate() error {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		strings.TrimSpace(p.StudentID) == "" {
		return ErrMissingDetails
	}
	return nil
}

// Settings are the quiz parameters picked in the form.
type Settings struct {
	Subject      string `json:"subject"`
	Level        string `json:"level"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

// Normalize fills unset fields with defaults.
func (s Settings) Normalize() Settings {
	if s.NumQuestions <= 0 {
		s.NumQuestions = DefaultNumQuestions
	}
	if s.Subject == "" {
		s.Subject = Subjects[0]
	}
	if s.Level == "" {
		s.Level = Levels[0]
	}
	if s.Difficulty == "" {
		s.Difficulty = Difficulties[0]
	}
	return s
}

// Title is the heading shown above a rendered quiz.
func (s Settings) Title() string {
	return "Quiz on " + s.Subject + " (" + s.Level + " - " + s.Difficulty + ")"
}

// Question is a single multiple-choice question.
type Question struct {
	// Text is the question prompt.
	Text string `json:"question"`

	// Options holds exactly four entries, each carrying its label prefix,
	// e.g. "A: tuple".
	Options []string `json:"options"`

	// Answer is the letter of the correct option, "A" through "D".
	Answer string `json:"answer"`
}

// Source records which generator produced a quiz.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Quiz is a generated set of questions.
type Quiz struct {
	ID        string     `json:"id"`
	Settings  Settings   `json:"settings"`
	Questions []Question `json:"questions"`
	Source    Source     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
}

// Attempt is a participant's set of answers to a quiz.
type Attempt struct {
	Quiz        *Quiz
	Participant Participant

	// Answers maps the 1-based question number to the chosen letter.
	Answers map[int]string
}

// NewAttempt starts an empty attempt.
func NewAttempt(q *Quiz, p Participant) *Attempt {
	return &Attempt{Quiz: q, Participant: p, Answers: make(map[int]string)}
}

// Choose records the letter picked for question number n (1-based) in its
// canonical upper-case form. Anything other than A-D is ignored.
func (a *Attempt) Choose(n int, letter string) {
	if i := LabelIndex(letter); i >= 0 {
		a.Answers[n] = Labels[i]
	}
}

// AnswerString renders answers in question order, "-" for unanswered.
func (a *Attempt) AnswerString() string {
	if a.Quiz == nil {
		return ""
	}
	parts := make([]string, len(a.Quiz.Questions))
	for i := range a.Quiz.Questions {
		if l, ok := a.Answers[i+1]; ok && l != "" {
			parts[i] = l
		} else {
			parts[i] = "-"
		}
	}
	return strings.Join(parts, "")
}

// LabelIndex returns the option index for a letter, or -1.
func LabelIndex(letter string) int {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	for i, l := range Labels {
		if l == letter {
			return i
		}
	}
	return -1
}

// OptionText strips the "A:" style prefix from an option.
func OptionText(opt string) string {
	if len(opt) >= 2 && opt[1] == ':' {
		return strings.TrimSpace(opt[2:])
	}
	return opt
}
