package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// ExpectedItemCount is the number of opposites, similar words and sentences
// the prompt asks for. It is an expectation, not an invariant: records with
// more or fewer items are still valid.
const ExpectedItemCount = 3

// WordRecord is the structured, validated result of one word lookup.
//
// A WordRecord is immutable. Its fields are unexported and every accessor
// that returns a slice returns a copy, so a record stored in a history can
// never be changed through a value handed to the UI.
type WordRecord struct {
	meaning      string
	opposites    []string
	similarWords []string
	sentences    []string
	imagePrompt  string
}

// NewWordRecord validates the given fields and returns a WordRecord.
// Either every required field is present or an error is returned; no
// partially populated record is ever produced.
func NewWordRecord(
	meaning string,
	opposites []string,
	similarWords []string,
	sentences []string,
	imagePrompt string,
) (*WordRecord, error) {
	if strings.TrimSpace(meaning) == "" {
		return nil, ErrEmptyMeaning
	}
	if strings.TrimSpace(imagePrompt) == "" {
		return nil, ErrEmptyImagePrompt
	}
	if opposites == nil || similarWords == nil || sentences == nil {
		return nil, ErrMissingList
	}

	return &WordRecord{
		meaning:      meaning,
		opposites:    slices.Clone(opposites),
		similarWords: slices.Clone(similarWords),
		sentences:    slices.Clone(sentences),
		imagePrompt:  imagePrompt,
	}, nil
}

// Meaning returns the simple meaning of the word.
func (r *WordRecord) Meaning() string { return r.meaning }

// Opposites returns a copy of the antonyms.
func (r *WordRecord) Opposites() []string { return slices.Clone(r.opposites) }

// SimilarWords returns a copy of the synonyms.
func (r *WordRecord) SimilarWords() []string { return slices.Clone(r.similarWords) }

// Sentences returns a copy of the example sentences.
func (r *WordRecord) Sentences() []string { return slices.Clone(r.sentences) }

// ImagePrompt returns the short visual description used to find an illustration.
func (r *WordRecord) ImagePrompt() string { return r.imagePrompt }

// Equal reports whether two records carry the same content.
func (r *WordRecord) Equal(other *WordRecord) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.meaning == other.meaning &&
		r.imagePrompt == other.imagePrompt &&
		slices.Equal(r.opposites, other.opposites) &&
		slices.Equal(r.similarWords, other.similarWords) &&
		slices.Equal(r.sentences, other.sentences)
}

// wordRecordJSON is the wire form of a WordRecord.
type wordRecordJSON struct {
	Meaning      string   `json:"meaning"`
	Opposites    []string `json:"opposites"`
	SimilarWords []string `json:"similar_words"`
	Sentences    []string `json:"sentences"`
	ImagePrompt  string   `json:"image_prompt"`
}

// MarshalJSON encodes the record with the same keys the model is asked to
// produce.
func (r *WordRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(wordRecordJSON{
		Meaning:      r.meaning,
		Opposites:    r.opposites,
		SimilarWords: r.similarWords,
		Sentences:    r.sentences,
		ImagePrompt:  r.imagePrompt,
	})
}
