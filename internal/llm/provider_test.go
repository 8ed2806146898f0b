package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestResponse_Text(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain text", "1. What is a list?\nA: x", "1. What is a list?\nA: x"},
		{"quoted string", `"1. Q?\nAnswer: B"`, "1. Q?\nAnswer: B"},
		{"json object untouched", `{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Response{Content: json.RawMessage(tt.content)}
			if got := r.Text(); got != tt.want {
				t.Fatalf("Text() = %q, want %q", got, tt.want)
			}
		})
	}

	var nilResp *Response
	if nilResp.Text() != "" {
		t.Fatal("expected empty text for nil response")
	}
}

func TestContextLabels(t *testing.T) {
	ctx := context.Background()
	if PurposeFrom(ctx) != "unknown" || QuizIDFrom(ctx) != "" {
		t.Fatal("bare context should carry no labels")
	}
	ctx = WithQuizID(WithPurpose(ctx, "quiz-generate"), "q-1")
	if p := PurposeFrom(ctx); p != "quiz-generate" {
		t.Errorf("purpose = %q", p)
	}
	if id := QuizIDFrom(ctx); id != "q-1" {
		t.Errorf("quiz id = %q", id)
	}
}
