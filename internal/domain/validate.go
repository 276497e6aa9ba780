package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var payloadKeys = []string{"title", "genre", "story", "script", "timeline", "music", "caption"}

// Validate checks the script and timeline entries.
func (p *StoryPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return nil
}

// ParseStoryPayload decodes raw model output into a validated StoryPayload.
// Every key must be present and non-null, and each value must have the
// expected JSON shape.
func ParseStoryPayload(raw []byte) (*StoryPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	var missing []string
	for _, key := range payloadKeys {
		v, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing keys %s", ErrMalformedOutput, strings.Join(missing, ", "))
	}

	var payload StoryPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}
