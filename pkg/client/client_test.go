package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storytrip-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.GenerationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Lisbon", req.Destination)

		fmt.Fprint(w, `{"id":3,"title":"Lisbon Lights","genre":"Romance","story":"s","script":[{"time":"0:00","text":"Ola"}],"timeline":[],"music":"Fado","caption":"c"}`)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil)
	story, err := c.CreateStory(context.Background(), domain.GenerationRequest{Destination: "Lisbon", Dates: "May", Mood: "Romantic", Platform: "Instagram"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), story.ID)
	assert.Equal(t, "Lisbon Lights", story.Title)
	assert.Equal(t, "Ola", story.Script[0].Text)
}

func TestCreateStory_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"AI Rate Limit Exceeded. Please wait 60 seconds and try again. (Free Tier Limit)"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).CreateStory(context.Background(), domain.GenerationRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Rate Limit")
}

func TestListStories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		fmt.Fprint(w, `[{"id":2,"title":"B","script":[],"timeline":[],"created_at":"2026-10-15T10:00:00Z"},{"id":1,"title":"A","script":[],"timeline":[],"created_at":"2026-10-14T10:00:00Z"}]`)
	}))
	defer srv.Close()

	stories, err := New(srv.URL, nil).ListStories(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, int64(2), stories[0].ID)
	assert.Equal(t, 2026, stories[0].CreatedAt.Year())
}

func TestGetStory_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"Story not found"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).GetStory(context.Background(), 42)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Story not found", apiErr.Message)
	assert.EqualError(t, err, "storytrip api: status 404: Story not found")
}

func TestNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "bad gateway")
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).ListStories(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "bad gateway", apiErr.Body)
}
