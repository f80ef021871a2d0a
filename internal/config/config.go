package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-2.0-flash"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	HTTP HTTP   `envPrefix:"HTTP_"`
	Log  Logger `envPrefix:"LOG_"`
	LLM  LLM
}

type HTTP struct {
	Port           uint16   `env:"PORT" envDefault:"8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`
}

// Logger selects the zap encoder and minimum level. Unknown values fall
// back to info/json.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// LLM holds the model identifier and provider credential.
type LLM struct {
	Provider      string `env:"LLM_PROVIDER" envDefault:"openai"`
	Model         string `env:"MODEL_NAME"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	GeminiKey     string `env:"GEMINI_API_KEY"`
}

// APIKey returns the credential of the selected provider.
func (c LLM) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiKey
	}
	return c.OpenAIKey
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	switch cfg.LLM.Provider {
	case ProviderOpenAI:
		if cfg.LLM.OpenAIKey == "" {
			return cfg, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = defaultOpenAIModel
		}
	case ProviderGemini:
		if cfg.LLM.GeminiKey == "" {
			return cfg, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		if cfg.LLM.Model == "" {
			cfg.LLM.Model = defaultGeminiModel
		}
	default:
		return cfg, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLM.Provider)
	}

	return cfg, nil
}
