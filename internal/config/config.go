package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAllowedOrigins are the cross-origin callers permitted when
// FAQ_BOT_ALLOW_ORIGINS is unset.
var DefaultAllowedOrigins = []string{
	"https://gisusafaris.com",
	"http://localhost",
	"http://127.0.0.1",
	"http://localhost:5500",
	"http://127.0.0.1:5500",
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Rates  RatesConfig  `mapstructure:"rates"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Corpus CorpusConfig `mapstructure:"corpus"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	Host           string        `mapstructure:"host"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	AllowedOrigins []string      `mapstructure:"-"`
}

type OpenAIConfig struct {
	Provider    string        `mapstructure:"provider"`
	APIKey      string        `mapstructure:"api_key"`
	APIEndpoint string        `mapstructure:"endpoint"`
	Model       string        `mapstructure:"model"`
	APIVersion  string        `mapstructure:"api_version"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type RatesConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RedisConfig configures the exchange rate cache. An empty Address
// disables caching.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CorpusConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.request_timeout", "30s")
	v.SetDefault("server.allowed_origins", "")

	v.SetDefault("openai.provider", "openai")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.endpoint", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.api_version", "2023-05-15")
	v.SetDefault("openai.timeout", "30s")

	v.SetDefault("rates.base_url", "https://api.exchangerate.host")
	v.SetDefault("rates.timeout", "10s")
	v.SetDefault("rates.cache_ttl", "10m")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("corpus.path", "data/faq_context.txt")
	v.SetDefault("log.level", "info")
}

// bindLegacyEnv keeps the variable names the bot has always been deployed with.
func bindLegacyEnv(v *viper.Viper) error {
	legacy := map[string][]string{
		"server.allowed_origins": {"FAQ_BOT_ALLOW_ORIGINS"},
		"openai.api_key":         {"OPENAI_API_KEY"},
		"openai.model":           {"OPENAI_MODEL"},
		"openai.endpoint":        {"OPENAI_ENDPOINT"},
		"server.port":            {"SERVER_PORT", "PORT"},
	}
	for key, envs := range legacy {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}

// LoadConfig reads configuration from an optional .env file, an optional
// config.yaml and the environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Server.AllowedOrigins = ParseOrigins(v.GetString("server.allowed_origins"))
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = DefaultAllowedOrigins
	}

	slog.Info("configuration loaded successfully")
	return &cfg, nil
}

// ParseOrigins splits a comma separated origin list, dropping blanks.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SlogLevel maps the configured level name onto slog.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
