package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxWordLength is the longest word, in characters, the explorer accepts.
const MaxWordLength = 30

// NormalizeWord prepares user input for use as a lookup key:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses inner runs of whitespace into a single space
//
// Hyphens and apostrophes are preserved.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateWord checks an already normalized word.
func ValidateWord(word string) error {
	if word == "" {
		return ErrEmptyInput
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		return ErrWordTooLong
	}
	return nil
}
