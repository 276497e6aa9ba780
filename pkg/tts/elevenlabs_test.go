package tts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/text-to-speech/voice-42", r.URL.Path)
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "xi-key", r.Header.Get("xi-api-key"))

		var body synthesizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Welcome to Kyoto.", body.Text)
		assert.Equal(t, DefaultModelID, body.ModelID)
		assert.Equal(t, 0.5, body.VoiceSettings.Stability)
		assert.Equal(t, 0.5, body.VoiceSettings.SimilarityBoost)

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-fake-mp3"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/v1/", APIKey: "xi-key", VoiceID: "voice-42"})
	require.True(t, c.Configured())

	audio, err := c.Synthesize(context.Background(), "Welcome to Kyoto.")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-fake-mp3"), audio)
}

func TestSynthesize_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "bad", VoiceID: "v"})
	_, err := c.Synthesize(context.Background(), "hi")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "invalid api key")
}

func TestSynthesize_EmptyAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "k", VoiceID: "v"})
	_, err := c.Synthesize(context.Background(), "hi")
	assert.True(t, errors.Is(err, ErrEmptyAudio))
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient(Config{APIKey: "k"}).Configured())
	assert.False(t, NewClient(Config{VoiceID: "v"}).Configured())
	assert.True(t, NewClient(Config{APIKey: "k", VoiceID: "v"}).Configured())
}
