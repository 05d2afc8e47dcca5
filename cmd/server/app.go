package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hashicorp/go-cleanhttp"
	openaioption "github.com/openai/openai-go/v3/option"
	"github.com/phrazzld/wonderwords/internal/config"
	"github.com/phrazzld/wonderwords/internal/generation"
	"github.com/phrazzld/wonderwords/internal/platform/claude"
	"github.com/phrazzld/wonderwords/internal/platform/gemini"
	"github.com/phrazzld/wonderwords/internal/platform/gpt"
	"github.com/phrazzld/wonderwords/internal/platform/imagesearch"
	"github.com/phrazzld/wonderwords/internal/service"
	"github.com/phrazzld/wonderwords/internal/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Service interfaces
	completer      generation.Completer
	lookupService  service.WordLookupService
	exploreService service.ExploreService

	// Per-browser word histories
	sessions *session.Manager
}

// newApplication creates a new application instance with all dependencies initialized.
// The language model client is chosen by cfg.LLM.Provider.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	completer, err := newCompleter(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM completer: %w", err)
	}
	logger.Info("LLM completer initialized successfully",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)

	locator, err := imagesearch.New(imagesearch.Config{
		Enabled:     cfg.Image.Enabled,
		URLTemplate: cfg.Image.URLTemplate,
		Qualifiers:  cfg.Image.Qualifiers,
		Timeout:     cfg.Image.Timeout(),
	}, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image locator: %w", err)
	}

	return assembleApplication(cfg, logger, completer, locator)
}

// assembleApplication wires the services around an already constructed
// completer and image locator.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	completer generation.Completer,
	images service.ImageLocator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		completer: completer,
	}

	prompts, err := generation.NewPromptBuilderFromFile(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.lookupService, err = service.NewWordLookupService(
		prompts,
		completer,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create word lookup service: %w", err)
	}

	app.exploreService, err = service.NewExploreService(
		app.lookupService,
		images,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create explore service: %w", err)
	}

	app.sessions = session.NewManager(
		cfg.Session.MaxSessions,
		cfg.Session.TTL(),
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// newCompleter builds the language model client for the configured provider.
// SDK retries are disabled: a failed lookup is reported to the user, who
// can simply try again.
func newCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Completer, error) {
	httpClient := cleanhttp.DefaultPooledClient()

	switch cfg.Provider {
	case config.ProviderAnthropic:
		return claude.NewCompleter(logger, cfg, option.WithHTTPClient(httpClient))
	case config.ProviderGemini:
		return gemini.NewCompleter(ctx, logger, cfg, httpClient)
	case config.ProviderOpenAI:
		return gpt.NewCompleter(logger, cfg, openaioption.WithHTTPClient(httpClient))
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	// Start the HTTP server
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Dropping in-memory sessions", "count", app.sessions.Len())
	app.sessions.Purge()
}
