// Package ai wraps the text generation providers used to write stories.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("provider returned an empty response")

// UsageInfo is the token accounting of one request.
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Estimated        bool
}

// Client sends a single prompt to a model and returns its text.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, UsageInfo, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	// Timeout of the underlying HTTP client. Zero means none.
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// New builds the Client for cfg.Provider.
func New(cfg Config, logger *zap.Logger) (Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		openaiConfig := openaigo.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			openaiConfig.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		}
		openaiConfig.HTTPClient = httpClient
		logger.Info("AI client created",
			zap.String("provider", ProviderOpenAI),
			zap.String("base_url", openaiConfig.BaseURL),
			zap.String("model", cfg.Model),
		)
		return &openAIClient{
			client: openaigo.NewClientWithConfig(openaiConfig),
			model:  cfg.Model,
			logger: logger.Named("OpenAIClient"),
		}, nil
	case ProviderOllama:
		return newOllamaClient(cfg, httpClient, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
