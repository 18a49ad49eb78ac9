package llm

import (
	"context"
	"sync"
)

// MockClient is an in-memory Client for tests and offline runs.
// Responses are served in order; once exhausted, the last one repeats.
// When no response is scripted it echoes a canned completion.
type MockClient struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func NewMockClient(responses ...string) *MockClient {
	return &MockClient{responses: responses}
}

// FailWith makes the next calls return the given errors before any scripted responses.
func (m *MockClient) FailWith(errs ...error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, errs...)
	return m
}

func (m *MockClient) GenerateCompletion(_ context.Context, prompt string, _ GenerationOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	call := m.calls
	m.calls++
	if call < len(m.errs) {
		return "", m.errs[call]
	}
	idx := call - len(m.errs)
	if len(m.responses) == 0 {
		return "OVERALL_ASSESSMENT: PASS\n\nNo issues found.", nil
	}
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	return m.responses[idx], nil
}

// Calls reports how many completions were requested.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Prompts returns the prompts received so far, in call order.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
