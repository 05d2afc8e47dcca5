package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/wonderwords/internal/generation"
)

// MockCompleter implements generation.Completer for testing
type MockCompleter struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Response string
	Err      error

	// Call tracking for verification
	CompleteCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Complete was called
		Count int

		// Prompts contains all prompts passed to Complete calls
		Prompts []string
	}
}

var _ generation.Completer = (*MockCompleter)(nil)

// Complete implements the generation.Completer interface
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.CompleteCalls.mu.Lock()
	m.CompleteCalls.Count++
	m.CompleteCalls.Prompts = append(m.CompleteCalls.Prompts, prompt)
	m.CompleteCalls.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt)
	}

	return m.Response, m.Err
}

// CallCount returns how many times Complete was called.
func (m *MockCompleter) CallCount() int {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()
	return m.CompleteCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "".
func (m *MockCompleter) LastPrompt() string {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()
	if len(m.CompleteCalls.Prompts) == 0 {
		return ""
	}
	return m.CompleteCalls.Prompts[len(m.CompleteCalls.Prompts)-1]
}

// NewMockCompleterWithResponse creates a MockCompleter that returns response
func NewMockCompleterWithResponse(response string) *MockCompleter {
	return &MockCompleter{Response: response}
}

// NewMockCompleterWithError creates a MockCompleter that returns err
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{Err: err}
}

// MockCompleterThatFails simulates an unreachable model API
func MockCompleterThatFails() *MockCompleter {
	return &MockCompleter{Err: generation.ErrCompletionFailed}
}

// Reset resets the call tracking state
func (m *MockCompleter) Reset() {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()

	m.CompleteCalls.Count = 0
	m.CompleteCalls.Prompts = nil
}
