package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/wonderwords/internal/domain"
)

// ResponseSchema represents the JSON object the model is asked to return.
type ResponseSchema struct {
	// Meaning is a short, simple meaning of the word.
	Meaning string `json:"meaning" validate:"required"`

	// Opposites are the antonyms. A missing or null list fails validation;
	// the count is not enforced.
	Opposites []string `json:"opposites" validate:"required"`

	// SimilarWords are the synonyms.
	SimilarWords []string `json:"similar_words" validate:"required"`

	// Sentences are the short example sentences.
	Sentences []string `json:"sentences" validate:"required"`

	// ImagePrompt is a short visual description for an illustration.
	ImagePrompt string `json:"image_prompt" validate:"required"`
}

var schemaValidator = validator.New(validator.WithRequiredStructEnabled())

// ParseWordRecord strictly decodes cleaned model output into a WordRecord.
//
// It fails with a *FormatError when the text is not a single well-formed
// JSON object, when any of the five required keys is missing or null, or
// when a value has the wrong type. Unknown keys are ignored. There is no
// partial recovery: an invalid reply never yields a record.
func ParseWordRecord(text string) (*domain.WordRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newFormatError(text, errors.New("response is empty"))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, newFormatError(text, fmt.Errorf("response is not a JSON object: %w", err))
	}

	if err := checkListElements(fields, "opposites", "similar_words", "sentences"); err != nil {
		return nil, newFormatError(text, err)
	}

	// Keys are matched exactly. Decoding each value from its own raw field
	// keeps case-variant aliases like "MEANING" from filling the schema.
	var schema ResponseSchema
	targets := []struct {
		key string
		dst any
	}{
		{"meaning", &schema.Meaning},
		{"opposites", &schema.Opposites},
		{"similar_words", &schema.SimilarWords},
		{"sentences", &schema.Sentences},
		{"image_prompt", &schema.ImagePrompt},
	}
	for _, target := range targets {
		raw, ok := fields[target.key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, newFormatError(text, fmt.Errorf("%w: field %q is missing", domain.ErrValidation, target.key))
		}
		if err := json.Unmarshal(raw, target.dst); err != nil {
			return nil, newFormatError(text, fmt.Errorf("failed to decode field %q: %w", target.key, err))
		}
	}

	if err := schemaValidator.Struct(schema); err != nil {
		return nil, newFormatError(text, fmt.Errorf("%w: %v", domain.ErrValidation, err))
	}

	record, err := domain.NewWordRecord(
		schema.Meaning,
		schema.Opposites,
		schema.SimilarWords,
		schema.Sentences,
		schema.ImagePrompt,
	)
	if err != nil {
		return nil, newFormatError(text, err)
	}

	return record, nil
}

// checkListElements rejects null entries inside the string lists, which the
// standard decoder would otherwise turn into empty strings.
func checkListElements(fields map[string]json.RawMessage, keys ...string) error {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var items []*string
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("field %q must be a list of strings: %w", key, err)
		}
		for i, item := range items {
			if item == nil {
				return fmt.Errorf("field %q item %d is null", key, i)
			}
		}
	}
	return nil
}
