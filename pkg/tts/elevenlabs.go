// Package tts is a client for the ElevenLabs text-to-speech API.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.elevenlabs.io/v1"
	DefaultModelID = "eleven_monolingual_v1"
)

// ErrEmptyAudio is returned when the API answers 2xx with no body.
var ErrEmptyAudio = errors.New("tts returned empty audio")

// VoiceSettings tunes the synthesized voice.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tts request failed with status %d: %s", e.StatusCode, e.Body)
}

// Config configures Client.
type Config struct {
	BaseURL  string
	APIKey   string
	VoiceID  string
	ModelID  string
	Timeout  time.Duration
	Settings *VoiceSettings
}

// Client calls POST /text-to-speech/{voice_id}.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	voiceID    string
	modelID    string
	settings   VoiceSettings
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	modelID := cfg.ModelID
	if modelID == "" {
		modelID = DefaultModelID
	}
	settings := VoiceSettings{Stability: 0.5, SimilarityBoost: 0.5}
	if cfg.Settings != nil {
		settings = *cfg.Settings
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		voiceID:    cfg.VoiceID,
		modelID:    modelID,
		settings:   settings,
	}
}

// Configured reports whether both the API key and the voice are set.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.voiceID != ""
}

// Synthesize returns the MP3 audio for text.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(synthesizeRequest{
		Text:          text,
		ModelID:       c.modelID,
		VoiceSettings: c.settings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tts request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create tts request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tts audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}
	return audio, nil
}
