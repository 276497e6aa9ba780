package mocks

import (
	"context"

	"storytrip-server/internal/domain"
	"storytrip-server/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockStoryService is a mock type for the service.StoryService type
type MockStoryService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, req
func (_m *MockStoryService) Create(ctx context.Context, req domain.GenerationRequest) (*domain.Story, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Story)
	}

	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx
func (_m *MockStoryService) List(ctx context.Context) ([]*domain.Story, error) {
	ret := _m.Called(ctx)

	var r0 []*domain.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Story)
	}

	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockStoryService) Get(ctx context.Context, id int64) (*domain.Story, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Story)
	}

	return r0, ret.Error(1)
}

// NewMockStoryService creates a new instance of MockStoryService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStoryService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoryService {
	m := &MockStoryService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockNarrativeGenerator is a mock type for the service.NarrativeGenerator type
type MockNarrativeGenerator struct {
	mock.Mock
}

// GenerateStory provides a mock function with given fields: ctx, prompt
func (_m *MockNarrativeGenerator) GenerateStory(ctx context.Context, prompt string) (*domain.StoryPayload, error) {
	ret := _m.Called(ctx, prompt)

	var r0 *domain.StoryPayload
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.StoryPayload)
	}

	return r0, ret.Error(1)
}

// NewMockNarrativeGenerator creates a new instance of MockNarrativeGenerator.
func NewMockNarrativeGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNarrativeGenerator {
	m := &MockNarrativeGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockVoiceoverGenerator is a mock type for the service.VoiceoverGenerator type
type MockVoiceoverGenerator struct {
	mock.Mock
}

// GenerateVoiceover provides a mock function with given fields: ctx, text
func (_m *MockVoiceoverGenerator) GenerateVoiceover(ctx context.Context, text string) []byte {
	ret := _m.Called(ctx, text)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0
}

// NewMockVoiceoverGenerator creates a new instance of MockVoiceoverGenerator.
func NewMockVoiceoverGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVoiceoverGenerator {
	m := &MockVoiceoverGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockSynthesizer is a mock type for the service.Synthesizer type
type MockSynthesizer struct {
	mock.Mock
}

// Configured provides a mock function with no fields
func (_m *MockSynthesizer) Configured() bool {
	return _m.Called().Bool(0)
}

// Synthesize provides a mock function with given fields: ctx, text
func (_m *MockSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ret := _m.Called(ctx, text)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewMockSynthesizer creates a new instance of MockSynthesizer.
func NewMockSynthesizer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSynthesizer {
	m := &MockSynthesizer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var (
	_ service.StoryService       = (*MockStoryService)(nil)
	_ service.NarrativeGenerator = (*MockNarrativeGenerator)(nil)
	_ service.VoiceoverGenerator = (*MockVoiceoverGenerator)(nil)
	_ service.Synthesizer        = (*MockSynthesizer)(nil)
)
