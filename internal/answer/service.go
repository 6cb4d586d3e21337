// Package answer turns a routed question into the text shown to the visitor.
package answer

import (
	"context"
	"log/slog"
	"time"

	"github.com/gisusafaris/faq-bot/apimodels"
	"github.com/gisusafaris/faq-bot/internal/corpus"
	"github.com/gisusafaris/faq-bot/internal/llm"
	"github.com/gisusafaris/faq-bot/internal/metrics"
	"github.com/gisusafaris/faq-bot/internal/rates"
	"github.com/gisusafaris/faq-bot/internal/router"
)

// CurrencyScore is reported for every currency answer.
const CurrencyScore = 1.0

// Service holds the process-wide, read-only collaborators. It is safe for
// concurrent use.
type Service struct {
	corpus    corpus.Corpus
	converter rates.Converter
	model     llm.Model
	modelName string
}

// New builds a Service. model may be nil, in which case modelName should
// say why it is unavailable.
func New(c corpus.Corpus, converter rates.Converter, model llm.Model, modelName string) *Service {
	if model != nil && modelName == "" {
		modelName = model.Name()
	}
	return &Service{
		corpus:    c,
		converter: converter,
		model:     model,
		modelName: modelName,
	}
}

func (s *Service) ModelName() string {
	return s.modelName
}

func (s *Service) Ask(ctx context.Context, req apimodels.AskRequest) apimodels.AskResponse {
	start := time.Now()
	routed := router.Route(req.Question)
	metrics.QuestionsRouted.WithLabelValues(string(routed.Kind())).Inc()

	resp := apimodels.AskResponse{Model: s.modelName}
	switch q := routed.(type) {
	case router.CurrencyQuery:
		slog.Info("Routing currency question", "amount", q.Amount, "from", q.From, "to", q.To)
		resp.Answer = FormatConversion(ctx, q.Amount, q.From, q.To, s.converter)
		resp.Score = CurrencyScore
	case router.FaqQuery:
		slog.Info("Routing FAQ question", "question", q.Question)
		resp.Answer, resp.Score = AnswerFAQ(ctx, q.Question, s.corpus.Text(), s.model)
	}

	slog.Debug("Answered question", "kind", routed.Kind(), "score", resp.Score, "duration", time.Since(start))
	return resp
}
