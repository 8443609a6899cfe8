package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filipefdm/rocketseat-prompt-manager/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupLoggerRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	router := gin.New()
	router.Use(Logger())
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	router.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return router, logs
}

func TestLoggerGeneratesRequestID(t *testing.T) {
	router, logs := setupLoggerRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok?q=ai", nil)
	router.ServeHTTP(w, req)

	requestID := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)
	assert.Equal(t, requestID, w.Body.String())

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "q=ai", entry.ContextMap()["query"])
	assert.Equal(t, requestID, entry.ContextMap()["request_id"])
}

func TestLoggerReusesIncomingRequestID(t *testing.T) {
	router, _ := setupLoggerRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", w.Body.String())
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	router, logs := setupLoggerRouter(t)

	for _, path := range []string{"/missing", "/boom"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
	}

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}
