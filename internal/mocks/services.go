package mocks

import (
	"context"

	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/service"
)

// MockExploreService implements service.ExploreService for testing
type MockExploreService struct {
	ExploreFn func(ctx context.Context, history service.WordHistory, rawWord string) (*service.ExploreResult, error)
}

// Explore implements service.ExploreService
func (m *MockExploreService) Explore(
	ctx context.Context,
	history service.WordHistory,
	rawWord string,
) (*service.ExploreResult, error) {
	if m.ExploreFn != nil {
		return m.ExploreFn(ctx, history, rawWord)
	}
	return nil, nil
}

// MockWordLookupService implements service.WordLookupService for testing
type MockWordLookupService struct {
	LookupWordFn func(ctx context.Context, word string) (*domain.WordRecord, error)

	// Words contains every word LookupWord was called with.
	Words []string
}

// LookupWord implements service.WordLookupService
func (m *MockWordLookupService) LookupWord(ctx context.Context, word string) (*domain.WordRecord, error) {
	m.Words = append(m.Words, word)
	if m.LookupWordFn != nil {
		return m.LookupWordFn(ctx, word)
	}
	return nil, nil
}
