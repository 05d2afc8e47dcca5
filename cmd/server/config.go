package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/wonderwords/internal/config"
)

// loadAppConfig loads the application configuration from .env, config.yaml
// and environment variables. A missing credential for the selected provider
// is reported here, before anything else starts.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfigSummary logs non-secret configuration details.
func logConfigSummary(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_file", cfg.Server.LogFile)

	logger.Debug("LLM configuration",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName,
		"temperature", cfg.LLM.Temperature,
		"api_key_present", cfg.LLM.APIKey() != "",
		"custom_prompt", cfg.LLM.PromptTemplatePath != "")

	logger.Debug("Image configuration",
		"enabled", cfg.Image.Enabled,
		"qualifiers", cfg.Image.Qualifiers)
}
