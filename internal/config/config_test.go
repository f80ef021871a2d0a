package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/promoly-ai/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENV", "HTTP_PORT", "HTTP_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
		"LLM_PROVIDER", "MODEL_NAME", "OPENAI_API_KEY", "OPENAI_BASE_URL", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, uint16(8000), cfg.HTTP.Port)
	require.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, config.ProviderOpenAI, cfg.LLM.Provider)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.Equal(t, "sk-test", cfg.LLM.APIKey())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.promoly.io")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, uint16(9090), cfg.HTTP.Port)
	require.Equal(t, []string{"https://app.promoly.io"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, config.ProviderGemini, cfg.LLM.Provider)
	require.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	require.Equal(t, "g-key", cfg.LLM.APIKey())
}

func TestLoadModelName(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MODEL_NAME", "gpt-4o")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "gpt-4o", cfg.LLM.Model)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing openai key", env: map[string]string{}},
		{name: "missing gemini key", env: map[string]string{"LLM_PROVIDER": "gemini", "OPENAI_API_KEY": "sk"}},
		{name: "unknown provider", env: map[string]string{"LLM_PROVIDER": "llama", "OPENAI_API_KEY": "sk"}},
		{name: "bad port", env: map[string]string{"HTTP_PORT": "http", "OPENAI_API_KEY": "sk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
