package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ZapLogger(log))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/generate", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
	r.GET("/api/generate/:id", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"}) })
	return r
}

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newTestEngine(zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, 0, logs.Len())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/generate?page=1", nil))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Request completed", entry.Message)
	assert.Equal(t, "/api/generate?page=1", entry.ContextMap()["path"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry.ContextMap()["request_id"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/generate/9", nil))
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestRequestID_EchoesClientValue(t *testing.T) {
	r := newTestEngine(zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	req.Header.Set(RequestIDHeader, "trip-123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trip-123", w.Header().Get(RequestIDHeader))
}
