package mocks

import (
	"context"
	"sync"
)

// MockImageLocator implements service.ImageLocator for testing
type MockImageLocator struct {
	LocateFn func(ctx context.Context, description string) (string, bool)

	// URL is returned when LocateFn is nil; an empty URL means no image.
	URL string

	mu           sync.Mutex
	descriptions []string
}

// Locate implements service.ImageLocator
func (m *MockImageLocator) Locate(ctx context.Context, description string) (string, bool) {
	m.mu.Lock()
	m.descriptions = append(m.descriptions, description)
	m.mu.Unlock()

	if m.LocateFn != nil {
		return m.LocateFn(ctx, description)
	}
	return m.URL, m.URL != ""
}

// Descriptions returns every description Locate was called with.
func (m *MockImageLocator) Descriptions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.descriptions))
	copy(result, m.descriptions)
	return result
}
