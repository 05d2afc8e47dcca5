package generation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWordRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	record, err := ParseWordRecord(happyJSON)
	require.NoError(t, err)

	assert.Equal(t, "feeling good", record.Meaning())
	assert.Equal(t, []string{"sad", "unhappy", "gloomy"}, record.Opposites())
	assert.Equal(t, []string{"glad", "joyful", "cheerful"}, record.SimilarWords())
	assert.Equal(t, []string{"I am happy today.", "She feels happy now.", "We are happy here."}, record.Sentences())
	assert.Equal(t, "a smiling sun", record.ImagePrompt())

	encoded, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, happyJSON, string(encoded))
}

func TestParseWordRecord_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	text := `{"meaning":"big","opposites":["small"],"similar_words":["large"],` +
		`"sentences":["A big dog."],"image_prompt":"an elephant","level":"easy"}`

	record, err := ParseWordRecord(text)
	require.NoError(t, err)
	assert.Equal(t, "big", record.Meaning())
}

func TestParseWordRecord_AcceptsOtherCardinalities(t *testing.T) {
	t.Parallel()

	text := `{"meaning":"big","opposites":["small","tiny"],"similar_words":["large","huge","giant","vast"],` +
		`"sentences":[],"image_prompt":"an elephant"}`

	record, err := ParseWordRecord(text)
	require.NoError(t, err)
	assert.Len(t, record.Opposites(), 2)
	assert.Len(t, record.SimilarWords(), 4)
	assert.Empty(t, record.Sentences())
}

func TestParseWordRecord_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"malformed json", `{"meaning": "feeling good",`},
		{"not an object", `["sad","glad"]`},
		{"plain prose", "Happy means feeling good."},
		{"trailing garbage", happyJSON + " extra"},
		{"fenced (not sanitized)", "```json\n" + happyJSON + "\n```"},
		{"missing meaning", `{"opposites":["a"],"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"missing opposites", `{"meaning":"m","similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"missing similar_words", `{"meaning":"m","opposites":["a"],"sentences":["c"],"image_prompt":"d"}`},
		{"missing sentences", `{"meaning":"m","opposites":["a"],"similar_words":["b"],"image_prompt":"d"}`},
		{"missing image_prompt", `{"meaning":"m","opposites":["a"],"similar_words":["b"],"sentences":["c"]}`},
		{"empty meaning", `{"meaning":"","opposites":["a"],"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"null meaning", `{"meaning":null,"opposites":["a"],"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"null list", `{"meaning":"m","opposites":null,"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"null list item", `{"meaning":"m","opposites":["a",null],"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"meaning wrong type", `{"meaning":42,"opposites":["a"],"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"opposites is a string", `{"meaning":"m","opposites":"sad","similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"list of numbers", `{"meaning":"m","opposites":["a"],"similar_words":[1,2,3],"sentences":["c"],"image_prompt":"d"}`},
		{"uppercase keys", `{"MEANING":"feeling good","Opposites":["sad"],"SIMILAR_WORDS":["glad"],"Sentences":["I am happy."],"Image_Prompt":"a sun"}`},
		{"one key in another case", `{"Meaning":"m","opposites":["a"],"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"null item under case-variant key", `{"meaning":"m","Opposites":[null,"sad"],"similar_words":["b"],"sentences":["c"],"image_prompt":"d"}`},
		{"blank image prompt", `{"meaning":"m","opposites":["a"],"similar_words":["b"],"sentences":["c"],"image_prompt":"  "}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record, err := ParseWordRecord(tc.text)
			require.Error(t, err)
			assert.Nil(t, record, "an invalid reply must never yield a record")
			assert.ErrorIs(t, err, ErrInvalidResponse)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tc.text, formatErr.Text)
			assert.NotNil(t, formatErr.Err)
		})
	}
}

func TestSanitizeThenParse(t *testing.T) {
	t.Parallel()

	record, err := ParseWordRecord(Sanitize("```json\n" + happyJSON + "\n```"))
	require.NoError(t, err)
	assert.Equal(t, "a smiling sun", record.ImagePrompt())
}

func TestParseWordRecord_ExactKeyWinsOverCaseVariant(t *testing.T) {
	t.Parallel()

	text := `{"meaning":"big","MEANING":"wrong","opposites":["small"],"Opposites":["wrong"],` +
		`"similar_words":["large"],"sentences":["A big dog."],"image_prompt":"an elephant"}`

	record, err := ParseWordRecord(text)
	require.NoError(t, err)
	assert.Equal(t, "big", record.Meaning())
	assert.Equal(t, []string{"small"}, record.Opposites())
}
