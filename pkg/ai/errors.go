package ai

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storytrip-server/internal/domain"

	"github.com/ollama/ollama/api"
	openaigo "github.com/sashabaranov/go-openai"
)

// classify turns a provider failure into a *domain.UpstreamError.
func classify(provider string, err error) error {
	if err == nil {
		return nil
	}
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return err
	}

	status := statusOf(err)
	kind := domain.KindForStatus(status)
	if status == 0 && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		// Transport errors and some proxies only mention the code in text.
		msg := err.Error()
		switch {
		case strings.Contains(msg, strconv.Itoa(http.StatusTooManyRequests)):
			kind = domain.UpstreamRateLimited
		case strings.Contains(msg, strconv.Itoa(http.StatusServiceUnavailable)):
			kind = domain.UpstreamOverloaded
		}
	}

	return &domain.UpstreamError{
		Provider:   provider,
		Kind:       kind,
		StatusCode: status,
		Err:        err,
	}
}

func statusOf(err error) int {
	var apiErr *openaigo.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openaigo.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	var statusErrPtr *api.StatusError
	if errors.As(err, &statusErrPtr) {
		return statusErrPtr.StatusCode
	}
	return 0
}

func statusLabel(err error) string {
	switch {
	case domain.IsRateLimited(err):
		return "rate_limited"
	case domain.IsOverloaded(err):
		return "overloaded"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	default:
		return "error"
	}
}
