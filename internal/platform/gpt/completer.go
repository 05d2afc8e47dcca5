// Package gpt implements generation.Completer on top of the OpenAI
// Responses API.
package gpt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/phrazzld/wonderwords/internal/config"
	"github.com/phrazzld/wonderwords/internal/generation"
)

// Completer sends the prompt as a single user message and returns the
// response's output text.
type Completer struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	logger      *slog.Logger
}

var _ generation.Completer = (*Completer)(nil)

// NewCompleter creates a Completer from the LLM configuration.
func NewCompleter(logger *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) (*Completer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &Completer{
		client:      openai.NewClient(clientOpts...),
		model:       cfg.ModelName,
		temperature: cfg.Temperature,
		maxTokens:   int64(cfg.MaxTokens),
		logger:      logger.With("component", "openai_completer"),
	}, nil
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.DebugContext(ctx, "calling OpenAI Responses API",
		"model", c.model,
		"prompt_length", len(prompt))

	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: openai.ChatModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						{
							OfInputText: &responses.ResponseInputTextParam{
								Text: prompt,
							},
						},
					},
					responses.EasyInputMessageRoleUser,
				),
			},
		},
		Temperature:     openai.Float(c.temperature),
		MaxOutputTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: openai API returned status %d", generation.ErrCompletionFailed, apiErr.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", generation.ErrCompletionFailed, err)
	}

	if resp.IncompleteDetails.Reason == "content_filter" {
		return "", fmt.Errorf("%w: response stopped by content filter", generation.ErrContentBlocked)
	}

	return resp.OutputText(), nil
}
