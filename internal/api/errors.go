package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/generation"
	"github.com/phrazzld/wonderwords/internal/store"
)

// Friendly messages shown to users. They never contain internal details.
const (
	MessageEmptyInput   = "Please enter a word first!"
	MessageWordTooLong  = "That word is too long! Try one with 30 letters or fewer."
	MessageLookupFailed = "Oops! Something went wrong. Please try again."
	MessageWordNotFound = "You haven't explored that word yet."
	MessageUnexpected   = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrWordTooLong),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Upstream language model errors
	case errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrCompletionFailed),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return MessageUnexpected
	}

	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return MessageEmptyInput

	case errors.Is(err, domain.ErrWordTooLong):
		return MessageWordTooLong

	case store.IsNotFoundError(err):
		return MessageWordNotFound

	case errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrCompletionFailed),
		errors.Is(err, generation.ErrContentBlocked):
		return MessageLookupFailed

	default:
		return MessageUnexpected
	}
}

// IsInputError reports whether err was caused by what the user typed, as
// opposed to a failure on our side. The page shows these as warnings.
func IsInputError(err error) bool {
	return MapErrorToStatusCode(err) == http.StatusBadRequest
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'ExploreRequest.Word' Error:Field validation for 'Word' failed on the 'max' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			// Further split to get just the field validation part
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
