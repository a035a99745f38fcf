package handlers

import (
  "net/http"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/services"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type StableHandler struct {
  log           *logger.Logger
  stableService services.StableService
}

func NewStableHandler(log *logger.Logger, stableService services.StableService) *StableHandler {
  return &StableHandler{
    log:           log.With("handler", "StableHandler"),
    stableService: stableService,
  }
}

func (h *StableHandler) List(c *gin.Context) {
  var filter *types.ActivationStatus
  if raw := c.Query("status"); raw != "" {
    status := types.ActivationStatus(raw)
    filter = &status
  }
  views, err := h.stableService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"stables": views})
}

func (h *StableHandler) Create(c *gin.Context) {
  var input services.CreateStableInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  stable, err := h.stableService.Create(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"stable": stable})
}

func (h *StableHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  view, err := h.stableService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, view)
}

func (h *StableHandler) Update(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.UpdateStableInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  stable, err := h.stableService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"stable": stable})
}

func (h *StableHandler) Archive(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.stableService.Archive(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *StableHandler) Restore(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.stableService.Restore(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

type memberRequest struct {
  MemberKind types.EntityKind `json:"member_kind"`
  MemberID   uuid.UUID        `json:"member_id"`
  At         *time.Time       `json:"at,omitempty"`
}

func (h *StableHandler) AddMember(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req memberRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  at := time.Time{}
  if req.At != nil {
    at = *req.At
  }
  if err := h.stableService.AddMember(c.Request.Context(), id, req.MemberKind, req.MemberID, at); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *StableHandler) RemoveMember(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req memberRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  at := time.Time{}
  if req.At != nil {
    at = *req.At
  }
  if err := h.stableService.RemoveMember(c.Request.Context(), id, req.MemberKind, req.MemberID, at); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *StableHandler) Establish(c *gin.Context) {
  handleTransition(c, h.log, "establish", h.stableService.Establish)
}

func (h *StableHandler) Disband(c *gin.Context) {
  handleTransition(c, h.log, "disband", h.stableService.Disband)
}

func (h *StableHandler) Retire(c *gin.Context) {
  handleTransition(c, h.log, "retire", h.stableService.Retire)
}

func (h *StableHandler) Unretire(c *gin.Context) {
  handleTransition(c, h.log, "unretire", h.stableService.Unretire)
}
