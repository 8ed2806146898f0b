package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted outcome for MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// Truncated makes the call stop on the token limit.
	Truncated bool
}

// TextResponse scripts a free-text answer with a rough token count.
func TextResponse(text string) MockResponse {
	out := len(text) / 4
	return MockResponse{
		Content: json.RawMessage(text),
		Usage:   Usage{InputTokens: 1, OutputTokens: out, TotalTokens: 1 + out},
	}
}

// MockProvider replays scripted responses in order. It backs the tests and
// QUIZGEN_LLM_PROVIDER=mock. Structured requests go through the same
// truncation and schema checks as the real providers. Once the script runs
// out every call fails as unavailable, so the quiz service falls back to
// the bank.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse

	// Calls and QuizIDs record each request and the quiz it was for.
	Calls   []Request
	QuizIDs []string
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	m.script = append(m.script, r)
	m.mu.Unlock()
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.QuizIDs = append(m.QuizIDs, QuizIDFrom(ctx))
	if len(m.script) == 0 {
		m.mu.Unlock()
		return nil, &ErrProviderUnavailable{Err: errors.New("mock: script exhausted")}
	}
	next := m.script[0]
	m.script = m.script[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}
	stop := StopEnd
	if next.Truncated {
		stop = StopMaxTokens
	}
	if err := checkStructured(req, next.Content, stop); err != nil {
		return nil, err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: "mock", StopReason: stop}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount is the number of Generate calls so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
