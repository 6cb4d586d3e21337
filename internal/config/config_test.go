package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, "openai", cfg.OpenAI.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "https://api.exchangerate.host", cfg.Rates.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Rates.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Rates.CacheTTL)
	assert.Empty(t, cfg.Redis.Address)
	assert.Equal(t, "data/faq_context.txt", cfg.Corpus.Path)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("FAQ_BOT_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("RATES_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Rates.Timeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, ParseOrigins(""))
	assert.Nil(t, ParseOrigins(" , "))
	assert.Equal(t, []string{"http://x"}, ParseOrigins("http://x,"))
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogConfig{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: ""}.SlogLevel())
}
