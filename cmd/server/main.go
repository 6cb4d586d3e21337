package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/gisusafaris/faq-bot/internal/answer"
	"github.com/gisusafaris/faq-bot/internal/config"
	"github.com/gisusafaris/faq-bot/internal/corpus"
	"github.com/gisusafaris/faq-bot/internal/llm"
	"github.com/gisusafaris/faq-bot/internal/rates"
	"github.com/gisusafaris/faq-bot/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	faqCorpus := corpus.Load(afero.NewOsFs(), cfg.Corpus.Path)

	var converter rates.Converter
	ratesClient, err := rates.NewClient(cfg.Rates.BaseURL, cfg.Rates.Timeout)
	if err != nil {
		log.Fatalf("failed to create exchange rate client: %v", err)
	}
	converter = ratesClient

	if cfg.Redis.Address != "" {
		cached := rates.NewCachedClient(ratesClient, rates.NewRedis(cfg.Redis), cfg.Rates.CacheTTL)
		defer cached.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cached.Ping(ctx); err != nil {
			slog.Warn("Exchange rate cache unreachable, lookups will go to the service", "address", cfg.Redis.Address, "error", err)
		}
		cancel()
		converter = cached
	}

	// The service runs without a model; FAQ questions then get a fallback answer.
	var model llm.Model
	modelName := cfg.OpenAI.Model
	openAI, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		slog.Error("QA model unavailable", "error", err)
		modelName = "unavailable: " + err.Error()
	} else {
		model = openAI
	}

	svc := answer.New(faqCorpus, converter, model, modelName)

	srv := server.New(*cfg, svc)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "model", modelName, "corpus", faqCorpus.Source())
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
