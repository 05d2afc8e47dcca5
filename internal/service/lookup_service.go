package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/generation"
)

// WordLookupService turns a word into a validated WordRecord using a
// language model.
type WordLookupService interface {
	// LookupWord makes exactly one model call for word and returns the parsed
	// record. A reply that cannot be parsed fails with *generation.FormatError.
	LookupWord(ctx context.Context, word string) (*domain.WordRecord, error)
}

// wordLookupServiceImpl implements the WordLookupService interface
type wordLookupServiceImpl struct {
	prompts   *generation.PromptBuilder
	completer generation.Completer
	logger    *slog.Logger
}

// NewWordLookupService creates a new WordLookupService.
// It returns an error if any of the required dependencies are nil.
func NewWordLookupService(
	prompts *generation.PromptBuilder,
	completer generation.Completer,
	logger *slog.Logger,
) (WordLookupService, error) {
	if prompts == nil {
		return nil, missingDependency("prompts")
	}
	if completer == nil {
		return nil, missingDependency("completer")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &wordLookupServiceImpl{
		prompts:   prompts,
		completer: completer,
		logger:    logger.With("component", "word_lookup_service"),
	}, nil
}

// LookupWord implements WordLookupService.
func (s *wordLookupServiceImpl) LookupWord(ctx context.Context, word string) (*domain.WordRecord, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.ErrEmptyInput
	}

	prompt, err := s.prompts.Build(word)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt for %q: %w", word, err)
	}

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "language model call failed",
			"word", word,
			"error", err)
		if errors.Is(err, generation.ErrCompletionFailed) || errors.Is(err, generation.ErrContentBlocked) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrCompletionFailed, err)
	}
	s.logger.InfoContext(ctx, "raw model response",
		"word", word,
		"response", raw)

	cleaned := generation.Sanitize(raw)
	s.logger.InfoContext(ctx, "cleaned model response",
		"word", word,
		"response", cleaned)

	record, err := generation.ParseWordRecord(cleaned)
	if err != nil {
		s.logger.ErrorContext(ctx, "validation failed for model response",
			"word", word,
			"error", err,
			"raw_response", raw)
		return nil, err
	}

	s.warnOnUnexpectedCounts(ctx, word, record)
	return record, nil
}

// warnOnUnexpectedCounts logs lists that do not carry the number of items
// the prompt asked for. Such records are still accepted.
func (s *wordLookupServiceImpl) warnOnUnexpectedCounts(ctx context.Context, word string, record *domain.WordRecord) {
	counts := []struct {
		field string
		n     int
	}{
		{"opposites", len(record.Opposites())},
		{"similar_words", len(record.SimilarWords())},
		{"sentences", len(record.Sentences())},
	}
	for _, c := range counts {
		if c.n != domain.ExpectedItemCount {
			s.logger.WarnContext(ctx, "unexpected item count in model response",
				"word", word,
				"field", c.field,
				"count", c.n,
				"expected", domain.ExpectedItemCount)
		}
	}
}
