package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader  = "X-Request-ID"
	requestLoggerKey = "request_logger"
)

// RequestLogger tags each request with an id and logs it once it completes.
// An incoming X-Request-ID is reused so ids survive a proxy hop.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		reqLog := log.With(zap.String("request_id", requestID))
		c.Set(requestLoggerKey, reqLog)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLog.Error("Request failed", fields...)
		case status >= 400:
			reqLog.Warn("Request rejected", fields...)
		default:
			reqLog.Info("Request handled", fields...)
		}
	}
}

// requestLogger returns the request-scoped logger, or a no-op logger when
// RequestLogger is not installed.
func requestLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(requestLoggerKey); ok {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return zap.NewNop()
}
