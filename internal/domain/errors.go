// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyInput is returned when a lookup is triggered with a blank word.
	// No backend call is made for blank input.
	ErrEmptyInput = errors.New("word cannot be empty")

	// ErrWordTooLong is returned when a word exceeds MaxWordLength characters.
	ErrWordTooLong = errors.New("word is too long")

	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyMeaning is returned when a word record has no meaning.
	ErrEmptyMeaning = errors.New("word record meaning cannot be empty")

	// ErrEmptyImagePrompt is returned when a word record has no image prompt.
	ErrEmptyImagePrompt = errors.New("word record image prompt cannot be empty")

	// ErrMissingList is returned when one of the word lists is absent.
	ErrMissingList = errors.New("word record list is missing")
)
