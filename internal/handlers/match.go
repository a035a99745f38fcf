package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/services"
)

type MatchHandler struct {
  log          *logger.Logger
  matchService services.MatchService
}

func NewMatchHandler(log *logger.Logger, matchService services.MatchService) *MatchHandler {
  return &MatchHandler{
    log:          log.With("handler", "MatchHandler"),
    matchService: matchService,
  }
}

// Book creates a match on an event card. The event id comes from the route so
// the card endpoints stay nested under /events/:id.
func (h *MatchHandler) Book(c *gin.Context) {
  eventID, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.BookMatchInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  input.EventID = eventID
  m, err := h.matchService.Book(c.Request.Context(), input)
  if err != nil {
    h.log.Warn("Book rejected", "event_id", eventID, "error", err)
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"match": m})
}

func (h *MatchHandler) ListCard(c *gin.Context) {
  eventID, ok := parseID(c, "id")
  if !ok {
    return
  }
  matches, err := h.matchService.ListCard(c.Request.Context(), eventID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"matches": matches})
}

func (h *MatchHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  m, err := h.matchService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"match": m})
}

func (h *MatchHandler) RecordResult(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.RecordResultInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  res, err := h.matchService.RecordResult(c.Request.Context(), id, input)
  if err != nil {
    h.log.Warn("RecordResult rejected", "match_id", id, "error", err)
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"result": res})
}

func (h *MatchHandler) Unbook(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.matchService.Unbook(c.Request.Context(), id); err != nil {
    h.log.Warn("Unbook rejected", "match_id", id, "error", err)
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
