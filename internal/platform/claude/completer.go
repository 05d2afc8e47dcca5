// Package claude implements generation.Completer on top of the Anthropic
// Messages API. It is the default language model backend.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/phrazzld/wonderwords/internal/config"
	"github.com/phrazzld/wonderwords/internal/generation"
)

// Completer sends a single user message to Claude and returns the text of
// the reply.
type Completer struct {
	client      anthropic.Client
	model       string
	temperature float64
	maxTokens   int64
	logger      *slog.Logger
}

var _ generation.Completer = (*Completer)(nil)

// NewCompleter creates a Completer from the LLM configuration. Extra request
// options are appended after the ones derived from cfg.
func NewCompleter(logger *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("%w: max tokens must be positive", generation.ErrInvalidConfig)
	}

	// One call per lookup; failures surface to the user instead of being retried.
	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &Completer{
		client:      anthropic.NewClient(clientOpts...),
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
		maxTokens:   int64(cfg.MaxTokens),
		logger:      logger.With("component", "anthropic_completer"),
	}, nil
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.DebugContext(ctx, "calling Anthropic Messages API",
		"model", c.model,
		"prompt_length", len(prompt))

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: anthropic API returned status %d", generation.ErrCompletionFailed, apiErr.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", generation.ErrCompletionFailed, err)
	}

	if msg.StopReason == anthropic.StopReasonRefusal {
		return "", fmt.Errorf("%w: model refused the request", generation.ErrContentBlocked)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	c.logger.DebugContext(ctx, "Anthropic Messages API call successful",
		"stop_reason", string(msg.StopReason),
		"output_tokens", msg.Usage.OutputTokens)

	return text.String(), nil
}
