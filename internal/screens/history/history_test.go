package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/store"
)

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestHistoryScreen_FromStore(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	repo := st.EventRepo()
	ctx := context.Background()
	for _, subj := range []string{"Python", "C++"} {
		err := repo.AppendQuizResult(ctx, store.QuizResultEventData{
			QuizID: "q-" + subj, Name: "Ada", Email: "ada@example.com", StudentID: "S-1",
			Subject: subj, Level: "Beginner", Difficulty: "Easy", Score: 6, Total: 10,
			Answers: "ABCDABCDAB", Source: "llm",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	s := New(screen.Services{EventRepo: repo})
	load(s)

	if len(s.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s.entries))
	}
	if s.entries[0].record.Subject != "C++" {
		t.Errorf("expected newest first, got %s", s.entries[0].record.Subject)
	}
	if !strings.Contains(s.View(120, 30), "6/10") {
		t.Error("expected score with total")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "ABCDABCDAB") {
		t.Error("expanded entry should show answers")
	}
}

func TestHistoryScreen_FromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz_data.csv")
	for i, subj := range []string{"AI", "Math", "Python"} {
		r := results.NewRecord(quiz.Participant{Name: "Bob", Email: "b@example.com", StudentID: "S-2"},
			quiz.Settings{Subject: subj, Level: "Advanced", Difficulty: "Hard"}, i+5)
		if err := results.Append(path, r); err != nil {
			t.Fatal(err)
		}
	}

	s := New(screen.Services{Recorder: results.NewRecorder(path, nil, nil)})
	load(s)

	if len(s.entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(s.entries))
	}
	if s.entries[0].record.Subject != "Python" {
		t.Errorf("expected last row first, got %s", s.entries[0].record.Subject)
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(screen.Services{})
	load(s)
	if !strings.Contains(s.View(80, 24), "No quizzes yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := New(screen.Services{})
	s.Update(historyLoadedMsg{Entries: make([]entry, 3)})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 2 {
		t.Errorf("expected selection clamped at 2, got %d", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 1 {
		t.Errorf("expected 1, got %d", s.selected)
	}
}
