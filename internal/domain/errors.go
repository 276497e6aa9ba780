package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a story does not exist.
	ErrNotFound = errors.New("story not found")
	// ErrMalformedOutput is returned when model output does not match the story schema.
	ErrMalformedOutput = errors.New("malformed model output")
	// ErrCorruptStory is returned when a stored script or timeline cannot be decoded.
	ErrCorruptStory = errors.New("stored story is corrupt")
)

// UpstreamKind classifies a failure reported by an external AI provider.
type UpstreamKind string

const (
	UpstreamRateLimited UpstreamKind = "rate_limited"
	UpstreamOverloaded  UpstreamKind = "overloaded"
	UpstreamFailed      UpstreamKind = "failed"
)

// UpstreamError is a classified provider failure. StatusCode is zero when
// the provider did not answer with an HTTP status.
type UpstreamError struct {
	Provider   string
	Kind       UpstreamKind
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// KindForStatus maps an HTTP status returned by a provider to an UpstreamKind.
func KindForStatus(status int) UpstreamKind {
	switch status {
	case http.StatusTooManyRequests:
		return UpstreamRateLimited
	case http.StatusServiceUnavailable:
		return UpstreamOverloaded
	default:
		return UpstreamFailed
	}
}

// IsRateLimited reports whether err carries a rate limited upstream failure.
func IsRateLimited(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr) && upErr.Kind == UpstreamRateLimited
}

// IsOverloaded reports whether err carries an overloaded upstream failure.
func IsOverloaded(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr) && upErr.Kind == UpstreamOverloaded
}
