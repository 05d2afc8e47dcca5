package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/phrazzld/wonderwords/internal/generation"
	"github.com/phrazzld/wonderwords/internal/mocks"
	"github.com/phrazzld/wonderwords/internal/service"
	"github.com/phrazzld/wonderwords/internal/store"
	"github.com/phrazzld/wonderwords/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, handler http.Handler, word string) (int, string) {
	t.Helper()
	form := url.Values{"word": {word}}
	rec := doRequest(handler, http.MethodPost, "/explore",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	return rec.Code, rec.Body.String()
}

func TestUIHandler_Index(t *testing.T) {
	t.Run("empty page shows form only", func(t *testing.T) {
		router := newTestRouter(t, fakeExplore(t, ""), store.NewHistory())

		rec := doRequest(router, http.MethodGet, "/", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, `maxlength="30"`)
		assert.Contains(t, body, "Explore Word")
		assert.NotContains(t, body, "<details>")
	})

	t.Run("history is listed most recent first with capitalized titles", func(t *testing.T) {
		history := store.NewHistory()
		require.NoError(t, history.Put("cat", testutils.MustSimpleRecord(t, "a small pet")))
		require.NoError(t, history.Put("happy", testutils.MustHappyRecord(t)))
		router := newTestRouter(t, fakeExplore(t, ""), history)

		rec := doRequest(router, http.MethodGet, "/", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		happyAt := strings.Index(body, "<summary>Happy</summary>")
		catAt := strings.Index(body, "<summary>Cat</summary>")
		require.NotEqual(t, -1, happyAt)
		require.NotEqual(t, -1, catAt)
		assert.Less(t, happyAt, catAt)
		assert.Contains(t, body, "sad, unhappy, gloomy")
		assert.Contains(t, body, "glad, joyful, cheerful")
		assert.Contains(t, body, "<li>I am happy today.</li>")
	})
}

func TestUIHandler_Explore(t *testing.T) {
	t.Run("happy word renders tabs and image", func(t *testing.T) {
		history := store.NewHistory()
		router := newTestRouter(t, fakeExplore(t, "https://img.example/sun.jpg"), history)

		status, body := postForm(t, router, "Happy")

		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Here's what I found about <strong>happy</strong>!")
		for _, tab := range []string{"Meaning", "Opposites", "Similar Words", "Sentences"} {
			assert.Contains(t, body, ">"+tab+"</label>")
		}
		assert.Contains(t, body, "feeling good")
		assert.Contains(t, body, `src="https://img.example/sun.jpg"`)
		assert.Contains(t, body, "<ol><li>sad</li><li>unhappy</li><li>gloomy</li></ol>")
		assert.Contains(t, body, "<ol><li>glad</li><li>joyful</li><li>cheerful</li></ol>")
		assert.Contains(t, body, "<summary>Happy</summary>")
		assert.Equal(t, 1, history.Len())
	})

	t.Run("no image omits figure", func(t *testing.T) {
		router := newTestRouter(t, fakeExplore(t, ""), store.NewHistory())

		status, body := postForm(t, router, "happy")

		require.Equal(t, http.StatusOK, status)
		assert.NotContains(t, body, "<img")
		assert.Contains(t, body, "feeling good")
	})

	t.Run("blank input shows warning", func(t *testing.T) {
		history := store.NewHistory()
		router := newTestRouter(t, fakeExplore(t, ""), history)

		status, body := postForm(t, router, "   ")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `class="notice warning">Please enter a word first!`)
		assert.NotContains(t, body, "found about")
		assert.Equal(t, 0, history.Len())
	})

	t.Run("too long input shows warning", func(t *testing.T) {
		router := newTestRouter(t, fakeExplore(t, ""), store.NewHistory())

		status, body := postForm(t, router, strings.Repeat("a", 31))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `class="notice warning"`)
	})

	t.Run("model failure shows friendly error and keeps history", func(t *testing.T) {
		history := store.NewHistory()
		require.NoError(t, history.Put("cat", testutils.MustSimpleRecord(t, "a small pet")))
		explore := &mocks.MockExploreService{
			ExploreFn: func(ctx context.Context, h service.WordHistory, rawWord string) (*service.ExploreResult, error) {
				return nil, errors.Join(generation.ErrCompletionFailed, errors.New("api key sk-ant-abc rejected"))
			},
		}
		router := newTestRouter(t, explore, history)

		status, body := postForm(t, router, "happy")

		assert.Equal(t, http.StatusBadGateway, status)
		assert.Contains(t, body, "Oops! Something went wrong. Please try again.")
		assert.NotContains(t, body, "sk-ant")
		assert.Contains(t, body, "<summary>Cat</summary>")
		assert.Equal(t, 1, history.Len())
	})

	t.Run("input is escaped when echoed back", func(t *testing.T) {
		explore := &mocks.MockExploreService{
			ExploreFn: func(ctx context.Context, h service.WordHistory, rawWord string) (*service.ExploreResult, error) {
				return nil, generation.ErrContentBlocked
			},
		}
		router := newTestRouter(t, explore, store.NewHistory())

		_, body := postForm(t, router, `"><script>`)

		assert.NotContains(t, body, `"><script>`)
	})
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"happy":     "Happy",
		"ice cream": "Ice cream",
		"élan":      "Élan",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, capitalize(in), in)
	}
}
