package middleware

import (
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/squaredcircle/promoter-backend/internal/logger"
)

// RequestID tags every request with an id so log lines across the stack can
// be correlated. Honors an incoming X-Request-ID when the caller sets one.
func RequestID() gin.HandlerFunc {
  return func(c *gin.Context) {
    id := c.GetHeader("X-Request-ID")
    if id == "" {
      id = uuid.New().String()
    }
    c.Set("request_id", id)
    c.Writer.Header().Set("X-Request-ID", id)
    c.Next()
  }
}

func RequestLog(log *logger.Logger) gin.HandlerFunc {
  requestLogger := log.With("Middleware", "RequestLog")
  return func(c *gin.Context) {
    start := time.Now()
    c.Next()
    fields := []any{
      "method", c.Request.Method,
      "path", c.FullPath(),
      "status", c.Writer.Status(),
      "latency_ms", time.Since(start).Milliseconds(),
      "request_id", c.GetString("request_id"),
    }
    if c.Writer.Status() >= 500 {
      requestLogger.Error("request failed", fields...)
      return
    }
    requestLogger.Info("request", fields...)
  }
}
