package result

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/scoring"
	"github.com/abhisek/quizgen/internal/screen"
)

func testAttempt() *quiz.Attempt {
	q := &quiz.Quiz{
		ID:        "q1",
		Settings:  quiz.Settings{Subject: "Math", Level: "Intermediate", Difficulty: "Medium", NumQuestions: 10},
		Questions: make([]quiz.Question, 10),
	}
	return quiz.NewAttempt(q, quiz.Participant{Name: "Ada", Email: "ada@example.com", StudentID: "S-1"})
}

func newScreen(t *testing.T) (*ResultScreen, string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "quiz_data.csv")
	reportPath := filepath.Join(dir, "quiz_report.csv")
	svc := screen.Services{
		Recorder:   results.NewRecorder(csvPath, nil, nil),
		ReportFile: reportPath,
	}
	return New(svc, testAttempt(), scoring.Result{Score: 7, Total: 10}), csvPath, reportPath
}

func TestResultScreen_RecordsOnInit(t *testing.T) {
	s, csvPath, _ := newScreen(t)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a record command")
	}
	s.Update(cmd())
	if !s.saved {
		t.Fatalf("expected saved, error: %s", s.errMsg)
	}

	rows, err := results.ReadAll(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Score != 7 || rows[0].Subject != "Math" {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestResultScreen_ShowsScore(t *testing.T) {
	s, _, _ := newScreen(t)
	view := s.View(100, 30)
	if !strings.Contains(view, "Your Score: 7/10") {
		t.Error("expected score line")
	}
	if !strings.Contains(view, LabelDownload) {
		t.Error("expected download option")
	}
}

func TestResultScreen_DownloadReport(t *testing.T) {
	s, _, reportPath := newScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a download command")
	}
	s.Update(cmd())
	if s.errMsg != "" {
		t.Fatalf("unexpected error %s", s.errMsg)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "Name,Email,UserID,Subject,Level,Difficulty,Score\n" +
		"Ada,ada@example.com,S-1,Math,Intermediate,Medium,7\n"
	if string(data) != want {
		t.Errorf("report = %q, want %q", data, want)
	}
	if !strings.Contains(s.View(100, 30), "Report saved to") {
		t.Error("expected report status")
	}
}

func TestResultScreen_BackToHome(t *testing.T) {
	s, _, _ := newScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestResultScreen_NoRecorder(t *testing.T) {
	s := New(screen.Services{}, testAttempt(), scoring.Result{Score: 5, Total: 10})
	if s.Init() != nil {
		t.Error("no recorder means nothing to save")
	}
}
