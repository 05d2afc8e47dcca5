package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// except for the provider credential aliases.
const EnvPrefix = "WONDERWORDS"

var (
	// ErrInvalidConfig is returned when configuration values fail validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingCredential is returned when no API key is configured for the
	// selected language model provider.
	ErrMissingCredential = errors.New("missing API credential")
)

// credentialAliases lists the extra environment variables accepted for each
// provider key, in order of preference.
var credentialAliases = map[string][]string{
	"llm.anthropic_api_key": {"ANTHROPIC_API_KEY", "CLAUDE_API_KEY"},
	"llm.gemini_api_key":    {"GEMINI_API_KEY"},
	"llm.openai_api_key":    {"OPENAI_API_KEY"},
}

// Load configuration from a .env file, an optional config.yaml and
// environment variables. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".env", ".")
}

// LoadFrom is Load with explicit locations for the .env file and the
// directory searched for config.yaml.
func LoadFrom(dotenvPath, configDir string) (*Config, error) {
	// Existing environment variables win over .env entries.
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", dotenvPath, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, aliases := range credentialAliases {
		envNames := append([]string{EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, aliases...)
		if err := v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LLM.ModelName == "" {
		cfg.LLM.ModelName = DefaultModels[cfg.LLM.Provider]
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints and that the selected provider has a
// credential.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidConfig, err)
	}

	if strings.TrimSpace(cfg.LLM.APIKey()) == "" {
		return fmt.Errorf("%w: no API key set for provider %q (set %s)",
			ErrMissingCredential, cfg.LLM.Provider, credentialHint(cfg.LLM.Provider))
	}
	return nil
}

func credentialHint(provider string) string {
	key := "llm." + provider + "_api_key"
	names := []string{EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}
	names = append(names, credentialAliases[key]...)
	return strings.Join(names, " or ")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_file", "wonderwords.log")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("llm.provider", ProviderAnthropic)
	v.SetDefault("llm.anthropic_api_key", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.temperature", 0.6)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.base_url", "")

	v.SetDefault("image.enabled", true)
	v.SetDefault("image.url_template", "https://source.unsplash.com/512x512/?{query}")
	v.SetDefault("image.qualifiers", []string{"cartoon", "colorful"})
	v.SetDefault("image.timeout_seconds", 10)

	v.SetDefault("session.cookie_name", "wonderwords_session")
	v.SetDefault("session.ttl_minutes", 120)
	v.SetDefault("session.max_sessions", 1000)
}
