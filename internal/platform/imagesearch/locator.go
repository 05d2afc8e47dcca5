// Package imagesearch resolves a short visual description into an
// illustration URL using a keyword-search image endpoint.
package imagesearch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// DefaultURLTemplate is the Unsplash source endpoint; {query} is replaced by
// the search terms.
const DefaultURLTemplate = "https://source.unsplash.com/512x512/?{query}"

// queryPlaceholder marks where the search terms go in a URL template.
const queryPlaceholder = "{query}"

// DefaultQualifiers bias results towards child-friendly illustrations.
var DefaultQualifiers = []string{"cartoon", "colorful"}

// ErrUnavailable indicates that the image endpoint did not produce an image.
// It is only ever logged; Locate reports it as an absent image.
var ErrUnavailable = errors.New("image unavailable")

// Config controls how images are located.
type Config struct {
	// Enabled switches image lookups on. A disabled locator never makes a
	// request and always reports no image.
	Enabled bool
	// URLTemplate must contain {query}.
	URLTemplate string
	// Qualifiers are appended to every query.
	Qualifiers []string
	// Timeout bounds a single request.
	Timeout time.Duration
}

// Locator finds illustrations over HTTP. It is safe for concurrent use.
type Locator struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// New creates a Locator. client may be nil, in which case a pooled client
// from go-cleanhttp is used with the configured timeout.
func New(cfg Config, client *http.Client, logger *slog.Logger) (*Locator, error) {
	if cfg.URLTemplate == "" {
		cfg.URLTemplate = DefaultURLTemplate
	}
	if !strings.Contains(cfg.URLTemplate, queryPlaceholder) {
		return nil, fmt.Errorf("image url template %q must contain %s", cfg.URLTemplate, queryPlaceholder)
	}
	if cfg.Qualifiers == nil {
		cfg.Qualifiers = DefaultQualifiers
	}
	if client == nil {
		client = cleanhttp.DefaultPooledClient()
		client.Timeout = cfg.Timeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Locator{
		config: cfg,
		client: client,
		logger: logger.With("component", "image_locator"),
	}, nil
}

// BuildQuery turns a description into URL query terms: each word is escaped,
// words are joined with '+', and the qualifiers follow, comma separated.
func BuildQuery(description string, qualifiers []string) string {
	words := strings.Fields(description)
	escaped := make([]string, 0, len(words))
	for _, w := range words {
		escaped = append(escaped, url.QueryEscape(w))
	}

	terms := []string{strings.Join(escaped, "+")}
	for _, q := range qualifiers {
		terms = append(terms, url.QueryEscape(q))
	}
	return strings.Join(terms, ",")
}

// URLFor returns the request URL for description.
func (l *Locator) URLFor(description string) string {
	return strings.ReplaceAll(l.config.URLTemplate, queryPlaceholder, BuildQuery(description, l.config.Qualifiers))
}

// Locate returns the URL of an illustration for description. It never fails:
// when the endpoint cannot serve an image the result is ("", false) and the
// cause is logged.
func (l *Locator) Locate(ctx context.Context, description string) (string, bool) {
	if !l.config.Enabled || strings.TrimSpace(description) == "" {
		return "", false
	}

	imageURL, err := l.fetch(ctx, l.URLFor(description))
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to fetch image",
			"description", description,
			"error", err)
		return "", false
	}
	return imageURL, true
}

func (l *Locator) fetch(ctx context.Context, requestURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	// Redirect-based endpoints serve a random image; the final URL is the
	// stable one to show.
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String(), nil
	}
	return requestURL, nil
}
