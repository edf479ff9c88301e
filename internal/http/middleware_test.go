package http

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

func setupLoggedRouter(status int) (*gin.Engine, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := gin.New()
	router.Use(RequestLogger(zap.New(core)))
	router.GET("/x", func(c *gin.Context) {
		requestLogger(c).Info("inside handler")
		c.Status(status)
	})
	return router, logs
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	router, logs := setupLoggedRouter(http.StatusOK)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	requestID := w.Header().Get(requestIDHeader)
	require.NotEmpty(t, requestID)

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, requestID, entry.ContextMap()["request_id"])
	}
	assert.Equal(t, "Request handled", entries[1].Message)
	assert.Equal(t, int64(http.StatusOK), entries[1].ContextMap()["status"])
}

func TestRequestLogger_ReusesIncomingID(t *testing.T) {
	router, logs := setupLoggedRouter(http.StatusOK)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()["request_id"])
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusFound, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			router, logs := setupLoggedRouter(tt.status)

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

			entries := logs.All()
			require.NotEmpty(t, entries)
			assert.Equal(t, tt.level, entries[len(entries)-1].Level)
		})
	}
}

func TestRequestLoggerFallback_IsNop(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, requestLogger(c))
}
