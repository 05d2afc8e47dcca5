package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func happyRecord(t *testing.T) *WordRecord {
	t.Helper()
	rec, err := NewWordRecord(
		"feeling good",
		[]string{"sad", "unhappy", "gloomy"},
		[]string{"glad", "joyful", "cheerful"},
		[]string{"I am happy today.", "She feels happy now.", "We are happy here."},
		"a smiling sun",
	)
	require.NoError(t, err)
	return rec
}

func TestNewWordRecord(t *testing.T) {
	t.Parallel()

	rec := happyRecord(t)
	assert.Equal(t, "feeling good", rec.Meaning())
	assert.Equal(t, []string{"sad", "unhappy", "gloomy"}, rec.Opposites())
	assert.Equal(t, []string{"glad", "joyful", "cheerful"}, rec.SimilarWords())
	assert.Equal(t, []string{"I am happy today.", "She feels happy now.", "We are happy here."}, rec.Sentences())
	assert.Equal(t, "a smiling sun", rec.ImagePrompt())
}

func TestNewWordRecord_Validation(t *testing.T) {
	t.Parallel()

	list := []string{"a", "b", "c"}
	tests := []struct {
		name        string
		meaning     string
		opposites   []string
		similar     []string
		sentences   []string
		imagePrompt string
		wantErr     error
	}{
		{"empty meaning", "", list, list, list, "sun", ErrEmptyMeaning},
		{"blank meaning", "   ", list, list, list, "sun", ErrEmptyMeaning},
		{"empty image prompt", "good", list, list, list, "", ErrEmptyImagePrompt},
		{"nil opposites", "good", nil, list, list, "sun", ErrMissingList},
		{"nil similar words", "good", list, nil, list, "sun", ErrMissingList},
		{"nil sentences", "good", list, list, nil, "sun", ErrMissingList},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := NewWordRecord(tc.meaning, tc.opposites, tc.similar, tc.sentences, tc.imagePrompt)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, rec, "no partial record may be returned")
		})
	}
}

func TestNewWordRecord_CardinalityNotEnforced(t *testing.T) {
	t.Parallel()

	rec, err := NewWordRecord("good", []string{"bad"}, []string{}, []string{"a", "b", "c", "d"}, "sun")
	require.NoError(t, err)
	assert.Len(t, rec.Opposites(), 1)
	assert.Empty(t, rec.SimilarWords())
	assert.Len(t, rec.Sentences(), 4)
}

func TestWordRecord_Immutable(t *testing.T) {
	t.Parallel()

	opposites := []string{"sad", "unhappy", "gloomy"}
	rec, err := NewWordRecord("feeling good", opposites, []string{"glad"}, []string{"Hi."}, "sun")
	require.NoError(t, err)

	// Mutating the constructor input must not leak into the record.
	opposites[0] = "changed"
	assert.Equal(t, "sad", rec.Opposites()[0])

	// Mutating an accessor result must not leak either.
	got := rec.Opposites()
	got[1] = "changed"
	assert.Equal(t, "unhappy", rec.Opposites()[1])
}

func TestWordRecord_Equal(t *testing.T) {
	t.Parallel()

	a := happyRecord(t)
	b := happyRecord(t)
	assert.True(t, a.Equal(b))

	c, err := NewWordRecord("feeling fine", a.Opposites(), a.SimilarWords(), a.Sentences(), a.ImagePrompt())
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestWordRecord_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(happyRecord(t))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"meaning": "feeling good",
		"opposites": ["sad", "unhappy", "gloomy"],
		"similar_words": ["glad", "joyful", "cheerful"],
		"sentences": ["I am happy today.", "She feels happy now.", "We are happy here."],
		"image_prompt": "a smiling sun"
	}`, string(data))
}
