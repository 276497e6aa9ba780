package service

import (
	"context"
	"fmt"

	"storytrip-server/internal/domain"
	"storytrip-server/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var storiesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "storytrip_stories_created_total",
	Help: "Stories generated and persisted.",
})

// StoryService is the generate/list/get workflow behind /api/generate.
type StoryService interface {
	Create(ctx context.Context, req domain.GenerationRequest) (*domain.Story, error)
	List(ctx context.Context) ([]*domain.Story, error)
	Get(ctx context.Context, id int64) (*domain.Story, error)
}

type storyServiceImpl struct {
	narrative NarrativeGenerator
	voiceover VoiceoverGenerator
	repo      repository.StoryRepository
	logger    *zap.Logger
}

var _ StoryService = (*storyServiceImpl)(nil)

func NewStoryService(
	narrative NarrativeGenerator,
	voiceover VoiceoverGenerator,
	repo repository.StoryRepository,
	logger *zap.Logger,
) StoryService {
	return &storyServiceImpl{
		narrative: narrative,
		voiceover: voiceover,
		repo:      repo,
		logger:    logger.Named("StoryService"),
	}
}

// BuildPrompt renders the trip request into the model prompt.
func BuildPrompt(req domain.GenerationRequest) string {
	return fmt.Sprintf(
		"Create a %s travel story for a trip to %s in %s. Platform: %s. Make it feel immersive and cinematic.",
		req.Mood, req.Destination, req.Dates, req.Platform,
	)
}

// Create generates a story, narrates its first line and persists it.
// The narration audio is not stored or returned.
func (s *storyServiceImpl) Create(ctx context.Context, req domain.GenerationRequest) (*domain.Story, error) {
	log := s.logger.With(
		zap.String("destination", req.Destination),
		zap.String("mood", req.Mood),
		zap.String("platform", req.Platform),
	)
	log.Info("Generating story")

	payload, err := s.narrative.GenerateStory(ctx, BuildPrompt(req))
	if err != nil {
		log.Error("Story generation failed", zap.Error(err))
		return nil, err
	}

	if len(payload.Script) > 0 {
		audio := s.voiceover.GenerateVoiceover(ctx, payload.Script[0].Text)
		log.Debug("Voiceover step finished", zap.Int("audio_bytes", len(audio)))
	}

	id, err := s.repo.Create(ctx, payload)
	if err != nil {
		log.Error("Failed to save story", zap.Error(err))
		return nil, err
	}

	storiesCreatedTotal.Inc()
	log.Info("Story created", zap.Int64("story_id", id), zap.String("title", payload.Title))
	return &domain.Story{ID: id, StoryPayload: *payload}, nil
}

func (s *storyServiceImpl) List(ctx context.Context) ([]*domain.Story, error) {
	stories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (s *storyServiceImpl) Get(ctx context.Context, id int64) (*domain.Story, error) {
	return s.repo.GetByID(ctx, id)
}
