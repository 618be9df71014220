// Package requestlog provides middleware for request logging with request ids
package requestlog

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trunghoangnt2003/memory/internal/logger"
)

// New returns a middleware function that logs request details
func New() gin.HandlerFunc {
	log := logger.WithContext("component", "http")

	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := generateRequestID()
		c.Set("request_id", requestID)

		c.Next()

		latency := time.Since(startTime)
		status := c.Writer.Status()

		logLevel := log.Info
		if status >= 400 {
			logLevel = log.Error
		} else if status >= 300 {
			logLevel = log.Warn
		}

		logLevel("Request completed",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
			"size", c.Writer.Size(),
		)
	}
}

// generateRequestID creates a simple request ID for tracing
func generateRequestID() string {
	return "req_" + time.Now().Format("20060102150405.000000")
}
