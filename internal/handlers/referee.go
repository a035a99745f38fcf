package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/services"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type RefereeHandler struct {
  log            *logger.Logger
  refereeService services.RefereeService
}

func NewRefereeHandler(log *logger.Logger, refereeService services.RefereeService) *RefereeHandler {
  return &RefereeHandler{
    log:            log.With("handler", "RefereeHandler"),
    refereeService: refereeService,
  }
}

func (h *RefereeHandler) List(c *gin.Context) {
  var filter *types.RosterStatus
  if raw := c.Query("status"); raw != "" {
    status := types.RosterStatus(raw)
    filter = &status
  }
  views, err := h.refereeService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"referees": views})
}

func (h *RefereeHandler) Create(c *gin.Context) {
  var input services.CreateRefereeInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  r, err := h.refereeService.Create(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"referee": r})
}

func (h *RefereeHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  view, err := h.refereeService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, view)
}

func (h *RefereeHandler) Update(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.UpdateRefereeInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  r, err := h.refereeService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"referee": r})
}

func (h *RefereeHandler) Archive(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.refereeService.Archive(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *RefereeHandler) Restore(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.refereeService.Restore(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *RefereeHandler) Employ(c *gin.Context) {
  handleTransition(c, h.log, "employ", h.refereeService.Employ)
}

func (h *RefereeHandler) Release(c *gin.Context) {
  handleTransition(c, h.log, "release", h.refereeService.Release)
}

func (h *RefereeHandler) Injure(c *gin.Context) {
  handleTransition(c, h.log, "injure", h.refereeService.Injure)
}

func (h *RefereeHandler) ClearFromInjury(c *gin.Context) {
  handleTransition(c, h.log, "clear_from_injury", h.refereeService.ClearFromInjury)
}

func (h *RefereeHandler) Suspend(c *gin.Context) {
  handleTransition(c, h.log, "suspend", h.refereeService.Suspend)
}

func (h *RefereeHandler) Reinstate(c *gin.Context) {
  handleTransition(c, h.log, "reinstate", h.refereeService.Reinstate)
}

func (h *RefereeHandler) Retire(c *gin.Context) {
  handleTransition(c, h.log, "retire", h.refereeService.Retire)
}

func (h *RefereeHandler) Unretire(c *gin.Context) {
  handleTransition(c, h.log, "unretire", h.refereeService.Unretire)
}
