package store

import (
	"context"
	"testing"
)

func TestAppendAndQueryQuizResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := QuizResultEventData{
		QuizID:     "q-1",
		Name:       "Ada",
		Email:      "ada@example.com",
		StudentID:  "S1",
		Subject:    "Python",
		Level:      "Beginner",
		Difficulty: "Easy",
		Score:      7,
		Total:      10,
		Answers:    "ABCDABCDAB",
		Source:     "fallback",
	}
	if err := repo.AppendQuizResult(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	data.Name = "Bob"
	data.Score = 5
	if err := repo.AppendQuizResult(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.QueryQuizResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Bob" || got[0].Score != 5 {
		t.Errorf("newest = %+v, want Bob/5", got[0])
	}
	if got[1].Answers != "ABCDABCDAB" || got[1].Source != "fallback" || got[1].Total != 10 {
		t.Errorf("oldest = %+v", got[1])
	}
	if got[1].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "p", Model: "m", Purpose: "quiz-generate", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendQuizResult(ctx, QuizResultEventData{Name: "Ada"}); err != nil {
		t.Fatalf("append result: %v", err)
	}

	llm, _ := repo.QueryLLMEvents(ctx, QueryOpts{})
	res, _ := repo.QueryQuizResults(ctx, QueryOpts{})
	if len(llm) != 1 || len(res) != 1 {
		t.Fatalf("llm=%d res=%d", len(llm), len(res))
	}
	if res[0].Sequence <= llm[0].Sequence {
		t.Errorf("result sequence %d should follow llm sequence %d", res[0].Sequence, llm[0].Sequence)
	}
}
