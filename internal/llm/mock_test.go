package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_StructuredChecks(t *testing.T) {
	req := Request{Schema: testSchema()}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"question":"Q","answer":"A"}`)},
		MockResponse{Content: json.RawMessage(`{"question":"Q","answer":"Z"}`)},
		MockResponse{Content: json.RawMessage(`{"quest`), Truncated: true},
	)

	resp, err := mock.Generate(context.Background(), req)
	if err != nil || resp.StopReason != StopEnd {
		t.Fatalf("valid answer rejected: %v", err)
	}

	_, err = mock.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("off-schema answer should fail validation, got %T", err)
	}

	_, err = mock.Generate(context.Background(), req)
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Errorf("truncated answer should report max tokens, got %T", err)
	}

	_, err = mock.Generate(WithQuizID(context.Background(), "q-9"), req)
	if Reason(err) != "unavailable" {
		t.Errorf("exhausted script should be unavailable, got %v", err)
	}
	if mock.CallCount() != 4 || mock.QuizIDs[3] != "q-9" {
		t.Errorf("calls not recorded: %d %v", mock.CallCount(), mock.QuizIDs)
	}
}

func TestMockProvider_FreeTextSkipsChecks(t *testing.T) {
	mock := NewMockProvider(TextResponse("not json at all"), MockResponse{Content: json.RawMessage("cut"), Truncated: true})
	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil || resp.Text() != "not json at all" {
		t.Fatalf("unexpected: %v %v", resp, err)
	}
	resp, err = mock.Generate(context.Background(), Request{})
	if err != nil || resp.StopReason != StopMaxTokens {
		t.Fatalf("free-text truncation is reported, not rejected: %v %v", resp, err)
	}
}

func TestMockProvider_ScriptOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	mock.AddResponse(TextResponse("third"))

	resp, err := mock.Generate(context.Background(), Request{System: "sys"})
	if err != nil || resp.Text() != "first" || resp.Usage.TotalTokens != 15 {
		t.Fatalf("first call: %+v %v", resp, err)
	}
	if _, err := mock.Generate(context.Background(), Request{}); Reason(err) != "rate_limited" {
		t.Errorf("second call should replay the scripted error, got %v", err)
	}
	if resp, _ := mock.Generate(context.Background(), Request{}); resp.Text() != "third" {
		t.Errorf("appended response not replayed: %+v", resp)
	}
	if mock.Calls[0].System != "sys" || mock.ModelID() != "mock" {
		t.Errorf("unexpected record %q / %q", mock.Calls[0].System, mock.ModelID())
	}
}
