// Package gemini provides an implementation of the generation.Completer
// interface that uses Google's Gemini API.
//
// This package is an infrastructure adapter, connecting the word lookup
// service to Google's external Gemini AI service without exposing the
// details of the external service to the rest of the application.
//
// Key components:
//
// 1. Completer:
//   - Implements the generation.Completer interface
//   - Sends one prompt per call with the configured temperature and token limit
//   - Returns the concatenated text of the first candidate
//
// 2. Error Handling:
//   - Transport and API failures map to generation.ErrCompletionFailed
//   - Safety blocks map to generation.ErrContentBlocked
//   - No retries; a failed lookup is reported to the user
//
// The package depends on the google.golang.org/genai client library.
package gemini
