package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider sends one prompt to a model and returns its answer. Every
// backend (Anthropic, OpenAI, Gemini, OpenRouter, mock) and every
// decorator (timeout, retry, logging) implements it.
type Provider interface {
	// Generate returns the model output. With req.Schema set the content
	// is JSON already validated against that schema; without it the
	// content is the raw completion text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider sends requests to.
	ModelID() string
}

// Role is who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Request is a single completion call. Quiz generation is single-turn, so
// Messages usually holds one user message.
type Request struct {
	System   string
	Messages []Message

	// Schema asks for structured output using the provider's native
	// mechanism. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero keeps the provider default.
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case, e.g. "quiz-questions". OpenAI and Gemini
	// require one.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is what came back.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that served the call, may differ from ModelID
	StopReason string // StopEnd or StopMaxTokens
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns Content as plain text. Some models wrap a free-text answer
// in a JSON string literal, which is unquoted here.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	if strings.HasPrefix(strings.TrimSpace(string(r.Content)), `"`) {
		var s string
		if json.Unmarshal(r.Content, &s) == nil {
			return s
		}
	}
	return string(r.Content)
}

// checkStructured applies the shared rules for schema requests: truncated
// output is reported as such, anything else must validate.
func checkStructured(req Request, content json.RawMessage, stop string) error {
	if req.Schema == nil {
		return nil
	}
	if stop == StopMaxTokens {
		return &ErrMaxTokensExceeded{Content: content}
	}
	return validateResponse(req.Schema, content)
}
