package api

import (
	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/service"
	"github.com/phrazzld/wonderwords/internal/store"
	"github.com/samber/lo"
)

// ExploreRequest defines the payload for the word lookup endpoint.
// Blank words are rejected by the service with a friendly message, so Word
// is not marked required here.
type ExploreRequest struct {
	Word string `json:"word" validate:"max=30"`
}

// ExploreResponse defines the successful response for a word lookup.
type ExploreResponse struct {
	// Word is the normalized word that was looked up
	Word string `json:"word"`

	// Record holds meaning, opposites, similar words, sentences and image prompt
	Record *domain.WordRecord `json:"record"`

	// ImageURL is the illustration, or empty when none could be found
	ImageURL string `json:"image_url"`
}

// HistoryEntryResponse is one explored word.
type HistoryEntryResponse struct {
	Word   string             `json:"word"`
	Record *domain.WordRecord `json:"record"`
}

// HistoryResponse lists the session's explored words, most recent first.
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

func exploreResultToResponse(result *service.ExploreResult) ExploreResponse {
	return ExploreResponse{
		Word:     result.Word,
		Record:   result.Record,
		ImageURL: result.ImageURL,
	}
}

func historyToResponse(entries []store.Entry) HistoryResponse {
	return HistoryResponse{
		Entries: lo.Map(entries, func(e store.Entry, _ int) HistoryEntryResponse {
			return HistoryEntryResponse{Word: e.Word, Record: e.Record}
		}),
	}
}
