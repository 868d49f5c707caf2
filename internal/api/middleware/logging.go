package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// RequestLogging emits one structured log line per completed request,
// correlated by the ID set in RequestID. Health probes are too chatty to
// keep, so /health is suppressed.
func RequestLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if param.Path == "/health" {
			return ""
		}

		var id string
		if raw, ok := param.Keys[requestIDKey]; ok {
			id, _ = raw.(string)
		}

		logger.Info("request completed",
			"request_id", id,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"client_ip", param.ClientIP,
			"error", param.ErrorMessage,
		)

		return ""
	})
}
