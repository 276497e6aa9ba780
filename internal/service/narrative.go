package service

import (
	"context"
	"strings"

	"storytrip-server/internal/domain"
	"storytrip-server/pkg/ai"

	"go.uber.org/zap"
)

const storytellerInstruction = "You are a cinematic travel storyteller and director. " +
	"Create a valid JSON response with the following keys: " +
	"title (string), genre (string), story (short emotive narrative string), " +
	"script (array of objects with 'time' and 'text'), " +
	"timeline (array of objects with 'type' [video/image], 'duration', 'desc'), " +
	"music (style/mood/bpm string), caption (string for social media). " +
	"Do not acknowledge. Output ONLY raw JSON. No markdown formatting."

// NarrativeGenerator turns a trip prompt into a structured story.
type NarrativeGenerator interface {
	GenerateStory(ctx context.Context, prompt string) (*domain.StoryPayload, error)
}

type narrativeGenerator struct {
	client ai.Client
	logger *zap.Logger
}

var _ NarrativeGenerator = (*narrativeGenerator)(nil)

// NewNarrativeGenerator returns a generator backed by client. A nil client
// means no credential is configured and every call returns MockStory.
func NewNarrativeGenerator(client ai.Client, logger *zap.Logger) NarrativeGenerator {
	return &narrativeGenerator{
		client: client,
		logger: logger.Named("NarrativeGenerator"),
	}
}

func (g *narrativeGenerator) GenerateStory(ctx context.Context, prompt string) (*domain.StoryPayload, error) {
	if g.client == nil {
		g.logger.Warn("No AI credential configured, returning mock story")
		return MockStory(), nil
	}

	fullPrompt := storytellerInstruction + "\n\nUser Input: " + prompt
	text, _, err := g.client.GenerateText(ctx, fullPrompt)
	if err != nil {
		return nil, err
	}

	payload, err := domain.ParseStoryPayload([]byte(stripCodeFences(text)))
	if err != nil {
		g.logger.Warn("Model output rejected", zap.Error(err), zap.Int("response_bytes", len(text)))
		return nil, err
	}
	return payload, nil
}

// stripCodeFences removes markdown ```json / ``` markers the model adds
// despite being told not to.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// MockStory is served when the server has no AI credential.
func MockStory() *domain.StoryPayload {
	return &domain.StoryPayload{
		Title: "Mock Trip (No API Key)",
		Genre: "Simulation",
		Story: "This is a simulated story because the Server does not have a GEMINI_API_KEY configured. " +
			"Please check your .env file.",
		Script: []domain.ScriptLine{
			{Time: "0:00", Text: "Please configure your API keys."},
		},
		Timeline: []domain.TimelineItem{},
		Music:    "Cinematic Build - 100 BPM",
		Caption:  "Configure keys in .env to unleash AI! 🚀",
	}
}
