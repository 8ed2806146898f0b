package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       Participant
		wantErr bool
	}{
		{"complete", Participant{Name: "Ada", Email: "ada@example.com", StudentID: "S1"}, false},
		{"missing name", Participant{Email: "ada@example.com", StudentID: "S1"}, true},
		{"blank email", Participant{Name: "Ada", Email: "   ", StudentID: "S1"}, true},
		{"missing id", Participant{Name: "Ada", Email: "ada@example.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingDetails))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettings_Normalize(t *testing.T) {
	s := Settings{Subject: "Math"}.Normalize()
	assert.Equal(t, "Math", s.Subject)
	assert.Equal(t, "Beginner", s.Level)
	assert.Equal(t, "Easy", s.Difficulty)
	assert.Equal(t, DefaultNumQuestions, s.NumQuestions)

	s = Settings{NumQuestions: 3}.Normalize()
	assert.Equal(t, 3, s.NumQuestions)
}

func TestSettings_Title(t *testing.T) {
	s := Settings{Subject: "AI", Level: "Advanced", Difficulty: "Hard"}
	assert.Equal(t, "Quiz on AI (Advanced - Hard)", s.Title())
}

func TestAttempt_AnswerString(t *testing.T) {
	q := &Quiz{Questions: make([]Question, 4)}
	a := NewAttempt(q, Participant{})
	a.Choose(1, "B")
	a.Choose(3, "D")
	assert.Equal(t, "B-D-", a.AnswerString())
}

func TestAttempt_ChooseNormalises(t *testing.T) {
	a := NewAttempt(&Quiz{Questions: make([]Question, 3)}, Participant{})
	a.Choose(1, "c")
	a.Choose(2, "E")
	a.Choose(3, "")
	assert.Equal(t, map[int]string{1: "C"}, a.Answers)
	assert.Equal(t, "C--", a.AnswerString())
}

func TestLabelIndex(t *testing.T) {
	assert.Equal(t, 0, LabelIndex("A"))
	assert.Equal(t, 3, LabelIndex(" d "))
	assert.Equal(t, -1, LabelIndex("E"))
	assert.Equal(t, -1, LabelIndex(""))
}

func TestOptionText(t *testing.T) {
	assert.Equal(t, "tuple", OptionText("C: tuple"))
	assert.Equal(t, "no label", OptionText("no label"))
}
