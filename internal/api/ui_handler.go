package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/wonderwords/internal/domain"
	"github.com/phrazzld/wonderwords/internal/platform/logger"
	"github.com/phrazzld/wonderwords/internal/service"
	"github.com/phrazzld/wonderwords/internal/store"
	"github.com/samber/lo"
)

//go:embed templates/index.html
var templateFS embed.FS

// pageView is the data rendered by templates/index.html.
type pageView struct {
	MaxLength int
	Input     string
	Warning   string
	Error     string
	Result    *resultView
	History   []historyView
}

type resultView struct {
	Word         string
	Meaning      string
	Opposites    []string
	SimilarWords []string
	Sentences    []string
	ImageURL     string
	ImagePrompt  string
}

type historyView struct {
	Title        string
	Meaning      string
	Opposites    string
	SimilarWords string
	Sentences    []string
}

// UIHandler serves the interactive word explorer page.
type UIHandler struct {
	exploreService service.ExploreService
	page           *template.Template
}

// NewUIHandler creates a new UIHandler with the embedded page template.
func NewUIHandler(exploreService service.ExploreService) (*UIHandler, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &UIHandler{
		exploreService: exploreService,
		page:           page,
	}, nil
}

// Index handles GET / requests.
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	history, ok := historyFromRequest(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, newPageView(history))
}

// Explore handles POST /explore form submissions. The page is re-rendered
// with the result, a warning for bad input, or a friendly error.
func (h *UIHandler) Explore(w http.ResponseWriter, r *http.Request) {
	history, ok := historyFromRequest(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<12)
	if err := r.ParseForm(); err != nil {
		view := newPageView(history)
		view.Warning = "Invalid request format"
		h.render(w, r, http.StatusBadRequest, view)
		return
	}
	input := r.PostFormValue("word")

	result, err := h.exploreService.Explore(r.Context(), history, input)
	if err != nil {
		view := newPageView(history)
		view.Input = input
		if IsInputError(err) {
			view.Warning = GetSafeErrorMessage(err)
		} else {
			view.Error = GetSafeErrorMessage(err)
			logger.FromContext(r.Context()).Debug("rendering error page",
				"word", domain.NormalizeWord(input),
				"error", err)
		}
		h.render(w, r, MapErrorToStatusCode(err), view)
		return
	}

	view := newPageView(history)
	view.Result = newResultView(result)
	h.render(w, r, http.StatusOK, view)
}

func (h *UIHandler) render(w http.ResponseWriter, r *http.Request, status int, view pageView) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, view); err != nil {
		logger.FromContext(r.Context()).Error("failed to render page", "error", err)
		http.Error(w, MessageUnexpected, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func newPageView(history *store.History) pageView {
	return pageView{
		MaxLength: domain.MaxWordLength,
		History: lo.Map(history.All(), func(e store.Entry, _ int) historyView {
			return historyView{
				Title:        capitalize(e.Word),
				Meaning:      e.Record.Meaning(),
				Opposites:    strings.Join(e.Record.Opposites(), ", "),
				SimilarWords: strings.Join(e.Record.SimilarWords(), ", "),
				Sentences:    e.Record.Sentences(),
			}
		}),
	}
}

func newResultView(result *service.ExploreResult) *resultView {
	return &resultView{
		Word:         result.Word,
		Meaning:      result.Record.Meaning(),
		Opposites:    result.Record.Opposites(),
		SimilarWords: result.Record.SimilarWords(),
		Sentences:    result.Record.Sentences(),
		ImageURL:     result.ImageURL,
		ImagePrompt:  result.Record.ImagePrompt(),
	}
}

// capitalize upper-cases the first letter of an already normalized word.
func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + word[size:]
}
