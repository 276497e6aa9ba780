package ai

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storytrip_ai_requests_total",
			Help: "Total number of requests to the AI provider.",
		},
		[]string{"provider", "model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storytrip_ai_request_duration_seconds",
			Help:    "Histogram of AI provider request durations.",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"provider", "model"},
	)
	aiPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storytrip_ai_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(50, 50, 20),
		},
		[]string{"provider", "model"},
	)
	aiCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storytrip_ai_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20),
		},
		[]string{"provider", "model"},
	)
)

func observeUsage(provider, model string, usage UsageInfo) {
	if usage.PromptTokens > 0 {
		aiPromptTokens.WithLabelValues(provider, model).Observe(float64(usage.PromptTokens))
	}
	if usage.CompletionTokens > 0 {
		aiCompletionTokens.WithLabelValues(provider, model).Observe(float64(usage.CompletionTokens))
	}
}

// tokenEstimator counts tokens locally for providers that return no usage.
// Non-OpenAI models have no tiktoken mapping and use cl100k_base.
type tokenEstimator struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
}

func (e *tokenEstimator) count(model, text string) (int, bool) {
	e.once.Do(func() {
		enc, err := tiktoken.EncodingForModel(model)
		if err != nil {
			enc, err = tiktoken.GetEncoding("cl100k_base")
		}
		if err == nil {
			e.enc = enc
		}
	})
	if e.enc == nil {
		return 0, false
	}
	return len(e.enc.Encode(text, nil, nil)), true
}
