package middleware

import (
	"photo-catalog-server/internal/logging"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDContextKey = "request_id"
	RequestIDHeaderName = "X-Request-ID"

	maxRequestIDLength = 128
)

// RequestIDFromContext returns a request ID or an empty string when unavailable.
func RequestIDFromContext(c *gin.Context) string {
	value, ok := c.Get(requestIDContextKey)
	if !ok {
		return ""
	}
	requestID, ok := value.(string)
	if !ok {
		return ""
	}
	return requestID
}

// RequestLogger 为每个请求分配 request id，挂载带 request id 的 logger，并在结束时输出访问日志。
func RequestLogger(base logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()
		requestID := normalizeRequestID(c.GetHeader(RequestIDHeaderName))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDContextKey, requestID)
		c.Writer.Header().Set(RequestIDHeaderName, requestID)

		reqLogger := base.With("request_id", requestID)
		logging.Attach(c, reqLogger)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", float64(time.Since(startedAt).Microseconds()) / 1000.0,
			"client_ip", c.ClientIP(),
		}
		if status >= 500 {
			reqLogger.Error(c.Request.Context(), "request", args...)
			return
		}
		reqLogger.Info(c.Request.Context(), "request", args...)
	}
}

func normalizeRequestID(raw string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return ""
	}
	if len(candidate) > maxRequestIDLength {
		candidate = candidate[:maxRequestIDLength]
	}
	return candidate
}
