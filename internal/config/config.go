package config

import (
	"time"
)

// Supported language model providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
)

// DefaultModels maps each provider to the model used when none is configured.
var DefaultModels = map[string]string{
	ProviderAnthropic: "claude-sonnet-4-5-20250929",
	ProviderGemini:    "gemini-2.0-flash",
	ProviderOpenAI:    "gpt-4o-mini",
}

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Image   ImageConfig   `mapstructure:"image" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// LogFile receives a copy of every log line. Empty disables the file.
	LogFile                string `mapstructure:"log_file"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// ShutdownTimeout returns the graceful shutdown deadline.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider        string `mapstructure:"provider" validate:"required,oneof=anthropic gemini openai"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	// ModelName defaults per provider, see DefaultModels.
	ModelName   string  `mapstructure:"model_name"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `mapstructure:"max_tokens" validate:"gt=0"`
	// PromptTemplatePath overrides the built-in prompt when set.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
	// BaseURL overrides the provider endpoint. Used for proxies and tests.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// APIKey returns the credential for the selected provider.
func (c LLMConfig) APIKey() string {
	switch c.Provider {
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	case ProviderGemini:
		return c.GeminiAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	}
	return ""
}

// ImageConfig controls illustration lookups.
type ImageConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	URLTemplate    string   `mapstructure:"url_template" validate:"required,contains={query}"`
	Qualifiers     []string `mapstructure:"qualifiers"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds" validate:"gte=1"`
}

// Timeout returns the per-request image lookup deadline.
func (c ImageConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig controls browser sessions and their word histories.
type SessionConfig struct {
	CookieName  string `mapstructure:"cookie_name" validate:"required"`
	TTLMinutes  int    `mapstructure:"ttl_minutes" validate:"gte=1"`
	MaxSessions int    `mapstructure:"max_sessions" validate:"gte=1"`
}

// TTL returns how long an idle session is kept.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}
