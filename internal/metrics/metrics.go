package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuestionsRouted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_questions_routed_total",
			Help: "Total number of questions routed, by kind",
		},
		[]string{"kind"},
	)

	RateLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_rate_lookups_total",
			Help: "Total number of exchange rate lookups, by outcome",
		},
		[]string{"status"},
	)

	RateCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "faqbot_rate_cache_total",
			Help: "Exchange rate cache lookups, by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "faqbot_inference_duration_seconds",
			Help:    "Duration of QA model inference in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "faqbot_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"route", "status"},
	)
)
