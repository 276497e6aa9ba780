package handler

import (
	"net/http"
	"strconv"

	"storytrip-server/internal/domain"
	"storytrip-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StoryHandler serves /api/generate.
type StoryHandler struct {
	service service.StoryService
	logger  *zap.Logger
}

func NewStoryHandler(svc service.StoryService, logger *zap.Logger) *StoryHandler {
	return &StoryHandler{
		service: svc,
		logger:  logger.Named("StoryHandler"),
	}
}

// RegisterRoutes mounts the story endpoints on router.
func (h *StoryHandler) RegisterRoutes(router gin.IRouter) {
	stories := router.Group("/api/generate")
	{
		stories.POST("", h.createStory)
		stories.GET("", h.listStories)
		stories.GET("/:id", h.getStory)
	}
}

// createStoryResponse flattens the id next to the generated fields.
type createStoryResponse struct {
	ID int64 `json:"id"`
	domain.StoryPayload
}

func (h *StoryHandler) createStory(c *gin.Context) {
	var req domain.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid generation request", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidReqFmt})
		return
	}

	story, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleGenerateError(c, err)
		return
	}

	c.JSON(http.StatusOK, createStoryResponse{ID: story.ID, StoryPayload: story.StoryPayload})
}

func (h *StoryHandler) listStories(c *gin.Context) {
	stories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleReadError(c, err, msgListFail)
		return
	}
	if stories == nil {
		stories = []*domain.Story{}
	}
	c.JSON(http.StatusOK, stories)
}

func (h *StoryHandler) getStory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidID})
		return
	}

	story, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleReadError(c, err, msgGetFail)
		return
	}
	c.JSON(http.StatusOK, story)
}
