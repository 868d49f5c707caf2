package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/parnika15-9/meeting-summarizer/internal/api/errors"
)

// ErrorHandler middleware converts panics into structured error responses so
// a per-request failure never terminates the process.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := ContextRequestID(c)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
			apiErr.RequestID = requestID
		case error:
			logger.Error("Internal server error",
				"error", err.Error(),
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			apiErr = errors.NewInternalError("Internal server error")
			apiErr.RequestID = requestID
		default:
			logger.Error("Unknown panic occurred",
				"recovered", recovered,
				"request_id", requestID,
			)
			apiErr = errors.NewInternalError("Internal server error")
			apiErr.RequestID = requestID
		}

		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError is a helper for handlers to return errors through the shared
// taxonomy.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if apiErr, ok := err.(*errors.APIError); ok {
		apiErr.RequestID = ContextRequestID(c)
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
		return
	}

	internal := errors.NewInternalError(err.Error())
	internal.RequestID = ContextRequestID(c)
	c.AbortWithStatusJSON(internal.HTTPStatus(), internal)
}
