package answer

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/gisusafaris/faq-bot/internal/llm"
	"github.com/gisusafaris/faq-bot/internal/metrics"
)

const (
	MsgModelUnavailable = "AI model temporarily unavailable."
	MsgModelFailed      = "Sorry, I couldn't process that right now."
)

// AnswerFAQ asks model to extract an answer to question from corpus. A nil
// model or a failed inference yields a fixed fallback with zero confidence.
func AnswerFAQ(ctx context.Context, question, corpus string, model llm.Model) (answer string, score float64) {
	if model == nil {
		return MsgModelUnavailable, 0
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("QA model panicked", "panic", r)
			metrics.InferenceDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
			answer, score = MsgModelFailed, 0
		}
	}()

	inf, err := model.Infer(ctx, question, corpus)
	if err != nil || inf == nil {
		slog.Error("QA model inference failed", "error", err)
		metrics.InferenceDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return MsgModelFailed, 0
	}

	metrics.InferenceDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	return inf.Answer, clampScore(inf.Score)
}

func clampScore(s float64) float64 {
	switch {
	case math.IsNaN(s) || s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}
