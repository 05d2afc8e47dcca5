package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/wonderwords/internal/api/shared"
	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/mocks"
	"github.com/phrazzld/wonderwords/internal/service"
	"github.com/phrazzld/wonderwords/internal/store"
	"github.com/phrazzld/wonderwords/internal/testutils"
)

const testSessionID = "6b0f6c1e-4b8e-4b61-9a3d-2b8f3f8f0a11"

// fakeExplore mimics the real service closely enough for handler tests:
// blank input fails before lookup, and successes land in history.
func fakeExplore(t *testing.T, imageURL string) *mocks.MockExploreService {
	return &mocks.MockExploreService{
		ExploreFn: func(ctx context.Context, history service.WordHistory, rawWord string) (*service.ExploreResult, error) {
			word := domain.NormalizeWord(rawWord)
			if err := domain.ValidateWord(word); err != nil {
				return nil, err
			}
			record := testutils.MustHappyRecord(t)
			if err := history.Put(word, record); err != nil {
				return nil, err
			}
			return &service.ExploreResult{Word: word, Record: record, ImageURL: imageURL}, nil
		},
	}
}

// newTestRouter mounts the handlers the way the server does, with a fixed
// session history injected in place of the cookie middleware.
func newTestRouter(t *testing.T, explore service.ExploreService, history *store.History) http.Handler {
	t.Helper()

	words := NewWordHandler(explore)
	ui, err := NewUIHandler(explore)
	if err != nil {
		t.Fatalf("NewUIHandler: %v", err)
	}

	r := chi.NewRouter()
	if history != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := shared.WithSession(req.Context(), testSessionID, history)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	r.Get("/", ui.Index)
	r.Post("/explore", ui.Explore)
	r.Post("/api/words", words.ExploreWord)
	r.Get("/api/history", words.ListHistory)
	r.Get("/api/history/{word}", words.GetHistoryEntry)
	return r
}

func doRequest(handler http.Handler, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
