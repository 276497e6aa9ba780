package ai

import (
	"context"
	"fmt"
	"time"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// openAIClient talks to any OpenAI-compatible chat completion API,
// including Gemini's compatibility endpoint.
type openAIClient struct {
	client    *openaigo.Client
	model     string
	logger    *zap.Logger
	estimator tokenEstimator
}

var _ Client = (*openAIClient)(nil)

func (c *openAIClient) GenerateText(ctx context.Context, prompt string) (string, UsageInfo, error) {
	var usage UsageInfo
	log := c.logger.With(zap.String("model", c.model), zap.Int("prompt_bytes", len(prompt)))

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: c.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleUser, Content: prompt},
		},
	})
	duration := time.Since(start)
	aiRequestDuration.WithLabelValues(ProviderOpenAI, c.model).Observe(duration.Seconds())

	if err != nil {
		err = classify(ProviderOpenAI, err)
		aiRequestsTotal.WithLabelValues(ProviderOpenAI, c.model, statusLabel(err)).Inc()
		log.Error("AI request failed", zap.Duration("duration", duration), zap.Error(err))
		return "", usage, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		aiRequestsTotal.WithLabelValues(ProviderOpenAI, c.model, statusLabel(ErrEmptyResponse)).Inc()
		log.Warn("AI returned an empty response", zap.Duration("duration", duration))
		return "", usage, fmt.Errorf("%s: %w", ProviderOpenAI, ErrEmptyResponse)
	}
	text := resp.Choices[0].Message.Content

	if resp.Usage.TotalTokens > 0 {
		usage.PromptTokens = resp.Usage.PromptTokens
		usage.CompletionTokens = resp.Usage.CompletionTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	} else if n, ok := c.estimator.count(c.model, prompt); ok {
		usage.PromptTokens = n
		usage.TotalTokens = n
		usage.Estimated = true
	}

	aiRequestsTotal.WithLabelValues(ProviderOpenAI, c.model, "success").Inc()
	observeUsage(ProviderOpenAI, c.model, usage)
	log.Info("AI response received",
		zap.Duration("duration", duration),
		zap.Int("response_bytes", len(text)),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
		zap.Bool("tokens_estimated", usage.Estimated),
	)
	return text, usage, nil
}
