package handler

import (
	"errors"
	"net/http"

	"storytrip-server/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgRateLimited   = "AI Rate Limit Exceeded. Please wait 60 seconds and try again. (Free Tier Limit)"
	msgOverloaded    = "AI Service Overloaded. Please try again in a moment."
	msgGenerateFail  = "Failed to generate story: "
	msgListFail      = "Failed to fetch stories"
	msgGetFail       = "Failed to fetch story"
	msgNotFound      = "Story not found"
	msgInvalidID     = "Invalid story ID"
	msgInvalidReqFmt = "Invalid request body"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleGenerateError maps a Create failure to a status code.
func (h *StoryHandler) handleGenerateError(c *gin.Context, err error) {
	var statusCode int
	var message string

	switch {
	case domain.IsRateLimited(err):
		statusCode = http.StatusTooManyRequests
		message = msgRateLimited
	case domain.IsOverloaded(err):
		statusCode = http.StatusServiceUnavailable
		message = msgOverloaded
	default:
		statusCode = http.StatusInternalServerError
		message = msgGenerateFail + err.Error()
	}

	h.logger.Error("Story generation request failed", zap.Int("status", statusCode), zap.Error(err))
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

// handleReadError maps a List/Get failure to a status code.
func (h *StoryHandler) handleReadError(c *gin.Context, err error, failMessage string) {
	if errors.Is(err, domain.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: msgNotFound})
		return
	}
	h.logger.Error("Story read failed", zap.Error(err))
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: failMessage})
}
