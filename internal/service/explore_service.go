package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/wonderwords/internal/domain"
)

// ImageLocator finds an illustration for a short description.
// It never fails: any problem is reported as ok == false.
type ImageLocator interface {
	Locate(ctx context.Context, description string) (url string, ok bool)
}

// WordHistory records successful lookups for one interactive session.
type WordHistory interface {
	Put(word string, record *domain.WordRecord) error
}

// ExploreResult is everything the UI shows for a fresh lookup.
type ExploreResult struct {
	// Word is the normalized word that was looked up.
	Word string
	// Record is the validated lookup result.
	Record *domain.WordRecord
	// ImageURL is the illustration, or empty when none could be found.
	ImageURL string
}

// HasImage reports whether an illustration was found.
func (r *ExploreResult) HasImage() bool {
	return r.ImageURL != ""
}

// ExploreService runs one user-triggered lookup from raw input to history.
type ExploreService interface {
	// Explore normalizes rawWord, looks it up, resolves an illustration and
	// stores the record in history. Blank input fails with
	// domain.ErrEmptyInput before any backend call. On any failure history
	// is left unchanged.
	Explore(ctx context.Context, history WordHistory, rawWord string) (*ExploreResult, error)
}

// exploreServiceImpl implements the ExploreService interface
type exploreServiceImpl struct {
	lookup WordLookupService
	images ImageLocator
	logger *slog.Logger
}

// NewExploreService creates a new ExploreService.
func NewExploreService(
	lookup WordLookupService,
	images ImageLocator,
	logger *slog.Logger,
) (ExploreService, error) {
	if lookup == nil {
		return nil, missingDependency("lookup")
	}
	if images == nil {
		return nil, missingDependency("images")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &exploreServiceImpl{
		lookup: lookup,
		images: images,
		logger: logger.With("component", "explore_service"),
	}, nil
}

// Explore implements ExploreService.
func (s *exploreServiceImpl) Explore(
	ctx context.Context,
	history WordHistory,
	rawWord string,
) (*ExploreResult, error) {
	if history == nil {
		return nil, &ServiceError{Operation: "explore", Message: "history cannot be nil"}
	}

	word := domain.NormalizeWord(rawWord)
	if err := domain.ValidateWord(word); err != nil {
		s.logger.DebugContext(ctx, "rejected word input",
			"input_length", len(rawWord),
			"error", err)
		return nil, err
	}

	record, err := s.lookup.LookupWord(ctx, word)
	if err != nil {
		s.logger.ErrorContext(ctx, "error processing word",
			"word", word,
			"error", err)
		return nil, err
	}

	imageURL, ok := s.images.Locate(ctx, record.ImagePrompt())
	if !ok {
		imageURL = ""
	}

	if err := history.Put(word, record); err != nil {
		return nil, &ServiceError{Operation: "explore", Message: "failed to record history", Err: err}
	}

	s.logger.InfoContext(ctx, "word explored",
		"word", word,
		"has_image", ok)

	return &ExploreResult{
		Word:     word,
		Record:   record,
		ImageURL: imageURL,
	}, nil
}
