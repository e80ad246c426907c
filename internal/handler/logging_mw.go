package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) requestLoggingMiddleware(c *gin.Context) {
	start := time.Now()

	path := c.Request.URL.Path
	method := c.Request.Method

	c.Next()

	h.logger.Info("api_request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", c.Writer.Status()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
}
