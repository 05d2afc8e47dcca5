package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/wonderwords/internal/api/shared"
	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/platform/logger"
	"github.com/phrazzld/wonderwords/internal/service"
)

// WordHandler handles the JSON word API.
type WordHandler struct {
	exploreService service.ExploreService
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(exploreService service.ExploreService) *WordHandler {
	return &WordHandler{
		exploreService: exploreService,
	}
}

// ExploreWord handles POST /api/words requests.
// It looks up the word, stores the result in the session history and
// returns the record together with an optional image URL.
func (h *WordHandler) ExploreWord(w http.ResponseWriter, r *http.Request) {
	history, ok := historyFromRequest(w, r)
	if !ok {
		return
	}

	var req ExploreRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MessageEmptyInput)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		sanitizedError := SanitizeValidationError(err)
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, sanitizedError,
			errors.Join(domain.ErrValidation, err))
		return
	}

	result, err := h.exploreService.Explore(r.Context(), history, req.Word)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("word explored via api",
		"word", result.Word,
		"has_image", result.HasImage())

	shared.RespondWithJSON(w, r, http.StatusOK, exploreResultToResponse(result))
}

// ListHistory handles GET /api/history requests.
func (h *WordHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	history, ok := historyFromRequest(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, historyToResponse(history.All()))
}

// GetHistoryEntry handles GET /api/history/{word} requests.
func (h *WordHandler) GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	history, ok := historyFromRequest(w, r)
	if !ok {
		return
	}

	word := domain.NormalizeWord(chi.URLParam(r, "word"))
	if word == "" {
		handleAPIError(w, r, domain.ErrEmptyInput)
		return
	}

	record, err := history.Lookup(word)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HistoryEntryResponse{Word: word, Record: record})
}
