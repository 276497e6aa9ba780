package domain

import (
	"encoding/json"
	"time"
)

// MediaType is the kind of shot in a story timeline.
type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeImage MediaType = "image"
)

// ScriptLine is one timestamped voiceover line.
type ScriptLine struct {
	Time string `json:"time" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// TimelineItem is one shot of the visual timeline.
type TimelineItem struct {
	Type     MediaType `json:"type" validate:"required,oneof=video image"`
	Duration string    `json:"duration"`
	Desc     string    `json:"desc"`
}

// StoryPayload is the generated part of a story, as returned by the model.
// Text fields may be empty; their presence is checked by ParseStoryPayload.
type StoryPayload struct {
	Title    string         `json:"title"`
	Genre    string         `json:"genre"`
	Story    string         `json:"story"`
	Script   []ScriptLine   `json:"script" validate:"required,min=1,dive"`
	Timeline []TimelineItem `json:"timeline" validate:"required,dive"`
	Music    string         `json:"music"`
	Caption  string         `json:"caption"`
}

// Story is a persisted StoryPayload.
type Story struct {
	ID int64 `json:"id"`
	StoryPayload
	CreatedAt time.Time `json:"created_at"`
}

// GenerationRequest is the body of POST /api/generate.
// Files is accepted for compatibility and ignored.
type GenerationRequest struct {
	Destination string          `json:"destination"`
	Dates       string          `json:"dates"`
	Mood        string          `json:"mood"`
	Platform    string          `json:"platform"`
	Files       json.RawMessage `json:"files,omitempty"`
}
