package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrInvalidResponse is returned when the model response cannot be parsed
	// or validated into a word record.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrCompletionFailed is returned when the language model could not be
	// reached or returned an API error.
	ErrCompletionFailed = errors.New("language model completion failed")

	// ErrContentBlocked is returned when the model refuses or blocks the content.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when a completer or prompt builder is
	// configured incorrectly.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// FormatError reports a model reply that could not be turned into a
// WordRecord. It carries the text that was parsed so the failure can be
// diagnosed from the logs.
//
// errors.Is(err, ErrInvalidResponse) is true for every FormatError.
type FormatError struct {
	// Text is the cleaned response text that failed to parse.
	Text string
	// Err is the underlying decode or validation error.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidResponse, e.Err)
}

// Unwrap exposes both ErrInvalidResponse and the underlying cause.
func (e *FormatError) Unwrap() []error {
	return []error{ErrInvalidResponse, e.Err}
}

func newFormatError(text string, err error) error {
	return &FormatError{Text: text, Err: err}
}
