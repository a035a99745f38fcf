package handlers

import (
  "context"
  "net/http"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/squaredcircle/promoter-backend/internal/logger"
)

// handleTransition runs one lifecycle endpoint: parse the id, parse
// the optional effective date, call the service. All the roster
// transition routes are this shape.
func handleTransition(c *gin.Context, log *logger.Logger, name string, fn func(ctx context.Context, id uuid.UUID, at time.Time) error) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  at, ok := parseTransitionDate(c)
  if !ok {
    return
  }
  if err := fn(c.Request.Context(), id, at); err != nil {
    log.Warn("Transition refused", "transition", name, "id", id, "error", err)
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
