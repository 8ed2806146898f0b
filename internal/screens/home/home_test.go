package home

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/history"
	"github.com/abhisek/quizgen/internal/screens/setup"
	"github.com/abhisek/quizgen/internal/store"
)

func TestHomeScreen_MenuLabels(t *testing.T) {
	h := New(screen.Services{})
	view := h.View(120, 40)
	for _, label := range []string{LabelNewQuiz, LabelHistory, LabelExit} {
		if !strings.Contains(view, label) {
			t.Errorf("menu missing %q", label)
		}
	}
}

func TestHomeScreen_NewQuizPushesSetup(t *testing.T) {
	h := New(screen.Services{})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*setup.SetupScreen); !ok {
		t.Errorf("expected setup screen, got %T", push.Screen)
	}
}

func TestHomeScreen_HistoryPushesHistory(t *testing.T) {
	h := New(screen.Services{})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("expected history screen, got %T", push.Screen)
	}
}

func TestHomeScreen_Stats(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	repo := st.EventRepo()
	err = repo.AppendQuizResult(context.Background(), store.QuizResultEventData{
		Subject: "AI", Score: 8, Total: 10,
	})
	if err != nil {
		t.Fatal(err)
	}

	h := New(screen.Services{EventRepo: repo})
	h.Update(h.Init()())
	if !strings.Contains(h.View(120, 40), "1 quiz taken") {
		t.Error("expected stats line")
	}
	if !strings.Contains(h.View(120, 40), "AI 8/10") {
		t.Error("expected last result")
	}

	err = repo.AppendQuizResult(context.Background(), store.QuizResultEventData{
		Subject: "Math", Score: 6, Total: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	h.Update(h.Resume()())
	if !strings.Contains(h.View(120, 40), "2 quizzes taken") {
		t.Error("expected stats refreshed on resume")
	}
	if !strings.Contains(h.View(120, 40), "Math 6/10") {
		t.Error("expected newest result after resume")
	}
}

func TestHomeScreen_NoRepoNoInit(t *testing.T) {
	if New(screen.Services{}).Init() != nil {
		t.Error("expected nil init without a repo")
	}
}
