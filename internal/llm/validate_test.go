package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A single multiple-choice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"answer": map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"question":"Q?","options":["A: a","B: b","C: c","D: d"],"answer":"C"}`, false},
		{"valid without optional", `{"question":"Q?","answer":"A"}`, false},
		{"missing required", `{"question":"Q?"}`, true},
		{"wrong type", `{"question":7,"answer":"A"}`, true},
		{"invalid enum", `{"question":"Q?","answer":"E"}`, true},
		{"too few options", `{"question":"Q?","options":["A: a"],"answer":"A"}`, true},
		{"malformed json", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := ValidateJSON(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedArray(t *testing.T) {
	schema := &Schema{
		Name: "test-quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": testSchema().Definition,
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"question":"Q1","answer":"A"},{"question":"Q2","answer":"D"}]}`)
	if err := ValidateJSON(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"question":"Q1","answer":"Z"}]}`)
	if err := ValidateJSON(schema, invalid); err == nil {
		t.Fatal("expected error for bad nested answer")
	}
}

func TestValidateResponse_NamesViolations(t *testing.T) {
	schema := &Schema{
		Name: "test-quiz-paths",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": testSchema().Definition,
				},
			},
		},
	}

	raw := json.RawMessage(`{"questions":[{"question":"Q1","answer":"A"},{"question":"Q2","answer":"Z"}]}`)
	err := ValidateJSON(schema, raw)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "/questions/1/answer") || !strings.Contains(msg, "enum") {
		t.Errorf("expected the failing path and keyword, got %q", msg)
	}
	if strings.Contains(msg, "/questions/0") {
		t.Errorf("valid question reported: %q", msg)
	}
}
