package store

import (
	"fmt"
	"sync"

	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/samber/lo"
)

// Entry is one explored word together with its record.
type Entry struct {
	Word   string
	Record *domain.WordRecord
}

// History maps normalized words to the record most recently produced for
// them. It is safe for concurrent use; two tabs sharing a session cookie
// write to the same History.
type History struct {
	mu      sync.RWMutex
	order   []string // most recent first
	records map[string]*domain.WordRecord
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{
		records: make(map[string]*domain.WordRecord),
	}
}

// Put stores record under the normalized form of word. An existing entry
// for the same word is replaced and becomes the most recent one.
func (h *History) Put(word string, record *domain.WordRecord) error {
	key := domain.NormalizeWord(word)
	if key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, domain.ErrEmptyInput)
	}
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidEntity)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.records[key]; exists {
		h.order = lo.Without(h.order, key)
	}
	h.order = append([]string{key}, h.order...)
	h.records[key] = record
	return nil
}

// Get returns the record stored for word, matching on the normalized form.
func (h *History) Get(word string) (*domain.WordRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	record, ok := h.records[domain.NormalizeWord(word)]
	return record, ok
}

// Lookup is Get with an error result, for callers that report missing words.
func (h *History) Lookup(word string) (*domain.WordRecord, error) {
	record, ok := h.Get(word)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, domain.NormalizeWord(word))
	}
	return record, nil
}

// All returns every entry, most recently explored first.
func (h *History) All() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return lo.Map(h.order, func(word string, _ int) Entry {
		return Entry{Word: word, Record: h.records[word]}
	})
}

// Len reports how many distinct words have been explored.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}
