package handlers

import (
  "fmt"
  "net/http"
  "strconv"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/services"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type EventHandler struct {
  log          *logger.Logger
  eventService services.EventService
}

func NewEventHandler(log *logger.Logger, eventService services.EventService) *EventHandler {
  return &EventHandler{
    log:          log.With("handler", "EventHandler"),
    eventService: eventService,
  }
}

func (h *EventHandler) List(c *gin.Context) {
  var filter *types.EventStatus
  if raw := c.Query("status"); raw != "" {
    status := types.EventStatus(raw)
    filter = &status
  }
  views, err := h.eventService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"events": views})
}

func (h *EventHandler) Upcoming(c *gin.Context) {
  within := 30 * 24 * time.Hour
  if raw := c.Query("within_days"); raw != "" {
    days, err := strconv.Atoi(raw)
    if err != nil || days < 1 {
      RespondError(c, http.StatusBadRequest, "invalid_query", fmt.Errorf("within_days must be a positive integer"))
      return
    }
    within = time.Duration(days) * 24 * time.Hour
  }
  views, err := h.eventService.Upcoming(c.Request.Context(), within)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"events": views})
}

func (h *EventHandler) Create(c *gin.Context) {
  var input services.CreateEventInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  e, err := h.eventService.Create(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"event": e})
}

func (h *EventHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  view, err := h.eventService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"event": view})
}

func (h *EventHandler) Update(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.UpdateEventInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  e, err := h.eventService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"event": e})
}

type scheduleRequest struct {
  Date    time.Time  `json:"date"`
  VenueID *uuid.UUID `json:"venue_id,omitempty"`
}

func (h *EventHandler) Schedule(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req scheduleRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if err := h.eventService.Schedule(c.Request.Context(), id, req.Date, req.VenueID); err != nil {
    h.log.Warn("Schedule rejected", "event_id", id, "error", err)
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *EventHandler) Unschedule(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.eventService.Unschedule(c.Request.Context(), id); err != nil {
    h.log.Warn("Unschedule rejected", "event_id", id, "error", err)
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *EventHandler) Archive(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.eventService.Archive(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *EventHandler) Restore(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.eventService.Restore(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
