package service_test

import (
	"context"
	"errors"
	"testing"

	"storytrip-server/internal/domain"
	"storytrip-server/internal/mocks"
	"storytrip-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var tripRequest = domain.GenerationRequest{
	Destination: "Kyoto",
	Dates:       "April",
	Mood:        "Nostalgic",
	Platform:    "TikTok",
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t,
		"Create a Nostalgic travel story for a trip to Kyoto in April. Platform: TikTok. Make it feel immersive and cinematic.",
		service.BuildPrompt(tripRequest),
	)
}

func TestCreate_Success(t *testing.T) {
	narrative := mocks.NewMockNarrativeGenerator(t)
	voiceover := mocks.NewMockVoiceoverGenerator(t)
	repo := mocks.NewMockStoryRepository(t)

	payload := service.MockStory()
	payload.Script = []domain.ScriptLine{{Time: "0:00", Text: "Temple bells."}, {Time: "0:04", Text: "Later."}}

	narrative.On("GenerateStory", mock.Anything, service.BuildPrompt(tripRequest)).Return(payload, nil).Once()
	voiceover.On("GenerateVoiceover", mock.Anything, "Temple bells.").Return([]byte("mp3")).Once()
	repo.On("Create", mock.Anything, payload).Return(int64(7), nil).Once()

	svc := service.NewStoryService(narrative, voiceover, repo, zap.NewNop())
	story, err := svc.Create(context.Background(), tripRequest)
	require.NoError(t, err)
	assert.Equal(t, int64(7), story.ID)
	assert.Equal(t, *payload, story.StoryPayload)
}

func TestCreate_VoiceoverNilStillSaves(t *testing.T) {
	narrative := mocks.NewMockNarrativeGenerator(t)
	voiceover := mocks.NewMockVoiceoverGenerator(t)
	repo := mocks.NewMockStoryRepository(t)

	payload := service.MockStory()
	narrative.On("GenerateStory", mock.Anything, mock.Anything).Return(payload, nil).Once()
	voiceover.On("GenerateVoiceover", mock.Anything, "Please configure your API keys.").Return(nil).Once()
	repo.On("Create", mock.Anything, payload).Return(int64(1), nil).Once()

	svc := service.NewStoryService(narrative, voiceover, repo, zap.NewNop())
	story, err := svc.Create(context.Background(), tripRequest)
	require.NoError(t, err)
	assert.Equal(t, int64(1), story.ID)
}

func TestCreate_GenerationFailureSkipsPersistence(t *testing.T) {
	narrative := mocks.NewMockNarrativeGenerator(t)
	voiceover := mocks.NewMockVoiceoverGenerator(t)
	repo := mocks.NewMockStoryRepository(t)

	upErr := &domain.UpstreamError{Provider: "openai", Kind: domain.UpstreamOverloaded, StatusCode: 503, Err: errors.New("busy")}
	narrative.On("GenerateStory", mock.Anything, mock.Anything).Return(nil, upErr).Once()

	svc := service.NewStoryService(narrative, voiceover, repo, zap.NewNop())
	_, err := svc.Create(context.Background(), tripRequest)
	assert.True(t, domain.IsOverloaded(err))
	voiceover.AssertNotCalled(t, "GenerateVoiceover", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RepositoryFailure(t *testing.T) {
	narrative := mocks.NewMockNarrativeGenerator(t)
	voiceover := mocks.NewMockVoiceoverGenerator(t)
	repo := mocks.NewMockStoryRepository(t)

	payload := service.MockStory()
	narrative.On("GenerateStory", mock.Anything, mock.Anything).Return(payload, nil).Once()
	voiceover.On("GenerateVoiceover", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("Create", mock.Anything, payload).Return(int64(0), errors.New("connection refused")).Once()

	svc := service.NewStoryService(narrative, voiceover, repo, zap.NewNop())
	_, err := svc.Create(context.Background(), tripRequest)
	assert.EqualError(t, err, "connection refused")
}

func TestListAndGet_DelegateToRepository(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	stories := []*domain.Story{{ID: 2}, {ID: 1}}
	repo.On("List", mock.Anything).Return(stories, nil).Once()
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound).Once()

	svc := service.NewStoryService(nil, nil, repo, zap.NewNop())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stories, got)

	_, err = svc.Get(context.Background(), 3)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
