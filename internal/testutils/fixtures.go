package testutils

import (
	"testing"

	"github.com/phrazzld/wonderwords/internal/domain"
)

// HappyJSON is a well-formed model reply for the word "happy".
const HappyJSON = `{"meaning":"feeling good","opposites":["sad","unhappy","gloomy"],` +
	`"similar_words":["glad","joyful","cheerful"],` +
	`"sentences":["I am happy today.","She feels happy now.","We are happy here."],` +
	`"image_prompt":"a smiling sun"}`

// MustHappyRecord returns the WordRecord encoded by HappyJSON.
func MustHappyRecord(t testing.TB) *domain.WordRecord {
	t.Helper()
	return MustWordRecord(t, "feeling good",
		[]string{"sad", "unhappy", "gloomy"},
		[]string{"glad", "joyful", "cheerful"},
		[]string{"I am happy today.", "She feels happy now.", "We are happy here."},
		"a smiling sun",
	)
}

// MustWordRecord creates a WordRecord or fails the test.
func MustWordRecord(
	t testing.TB,
	meaning string,
	opposites, similarWords, sentences []string,
	imagePrompt string,
) *domain.WordRecord {
	t.Helper()
	record, err := domain.NewWordRecord(meaning, opposites, similarWords, sentences, imagePrompt)
	if err != nil {
		t.Fatalf("failed to create word record: %v", err)
	}
	return record
}

// MustSimpleRecord creates a record whose meaning is meaning and whose lists
// hold one item each.
func MustSimpleRecord(t testing.TB, meaning string) *domain.WordRecord {
	t.Helper()
	return MustWordRecord(t, meaning, []string{"opposite"}, []string{"similar"}, []string{"A sentence."}, "a picture")
}
