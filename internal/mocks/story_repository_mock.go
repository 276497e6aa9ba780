package mocks

import (
	"context"

	"storytrip-server/internal/domain"
	"storytrip-server/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockStoryRepository is a mock type for the repository.StoryRepository type
type MockStoryRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, payload
func (_m *MockStoryRepository) Create(ctx context.Context, payload *domain.StoryPayload) (int64, error) {
	ret := _m.Called(ctx, payload)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, *domain.StoryPayload) int64); ok {
		r0 = rf(ctx, payload)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx
func (_m *MockStoryRepository) List(ctx context.Context) ([]*domain.Story, error) {
	ret := _m.Called(ctx)

	var r0 []*domain.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Story)
	}

	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Story)
	}

	return r0, ret.Error(1)
}

// NewMockStoryRepository creates a new instance of MockStoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoryRepository {
	m := &MockStoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ repository.StoryRepository = (*MockStoryRepository)(nil)
