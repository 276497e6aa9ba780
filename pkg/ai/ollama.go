package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

const defaultOllamaURL = "http://localhost:11434"

// ollamaClient uses the native Ollama chat API with JSON output mode.
type ollamaClient struct {
	client *api.Client
	model  string
	logger *zap.Logger
}

var _ Client = (*ollamaClient)(nil)

func newOllamaClient(cfg Config, httpClient *http.Client, logger *zap.Logger) (Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" || strings.Contains(baseURL, "generativelanguage.googleapis.com") {
		baseURL = defaultOllamaURL
	}
	// api.NewClient wants the server root, not the OpenAI-compatible /v1 prefix.
	baseURL = strings.TrimSuffix(strings.TrimSuffix(baseURL, "/"), "/v1")

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama base URL %q: %w", baseURL, err)
	}

	logger.Info("AI client created",
		zap.String("provider", ProviderOllama),
		zap.String("base_url", baseURL),
		zap.String("model", cfg.Model),
	)
	return &ollamaClient{
		client: api.NewClient(parsedURL, httpClient),
		model:  cfg.Model,
		logger: logger.Named("OllamaClient"),
	}, nil
}

func (c *ollamaClient) GenerateText(ctx context.Context, prompt string) (string, UsageInfo, error) {
	var usage UsageInfo
	log := c.logger.With(zap.String("model", c.model), zap.Int("prompt_bytes", len(prompt)))

	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		Stream:   &stream,
		Format:   json.RawMessage(`"json"`),
	}

	var resp api.ChatResponse
	start := time.Now()
	err := c.client.Chat(ctx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	duration := time.Since(start)
	aiRequestDuration.WithLabelValues(ProviderOllama, c.model).Observe(duration.Seconds())

	if err != nil {
		err = classify(ProviderOllama, err)
		aiRequestsTotal.WithLabelValues(ProviderOllama, c.model, statusLabel(err)).Inc()
		log.Error("AI request failed", zap.Duration("duration", duration), zap.Error(err))
		return "", usage, err
	}

	text := resp.Message.Content
	if text == "" {
		aiRequestsTotal.WithLabelValues(ProviderOllama, c.model, statusLabel(ErrEmptyResponse)).Inc()
		log.Warn("AI returned an empty response", zap.Duration("duration", duration))
		return "", usage, fmt.Errorf("%s: %w", ProviderOllama, ErrEmptyResponse)
	}

	usage.PromptTokens = resp.PromptEvalCount
	usage.CompletionTokens = resp.EvalCount
	usage.TotalTokens = resp.PromptEvalCount + resp.EvalCount

	aiRequestsTotal.WithLabelValues(ProviderOllama, c.model, "success").Inc()
	observeUsage(ProviderOllama, c.model, usage)
	log.Info("AI response received",
		zap.Duration("duration", duration),
		zap.Int("response_bytes", len(text)),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
	)
	return text, usage, nil
}
