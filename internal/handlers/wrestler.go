package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/squaredcircle/promoter-backend/internal/logger"
  "github.com/squaredcircle/promoter-backend/internal/services"
  "github.com/squaredcircle/promoter-backend/internal/types"
)

type WrestlerHandler struct {
  log             *logger.Logger
  wrestlerService services.WrestlerService
}

func NewWrestlerHandler(log *logger.Logger, wrestlerService services.WrestlerService) *WrestlerHandler {
  return &WrestlerHandler{
    log:             log.With("handler", "WrestlerHandler"),
    wrestlerService: wrestlerService,
  }
}

func (h *WrestlerHandler) List(c *gin.Context) {
  var filter *types.RosterStatus
  if raw := c.Query("status"); raw != "" {
    status := types.RosterStatus(raw)
    filter = &status
  }
  views, err := h.wrestlerService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"wrestlers": views})
}

func (h *WrestlerHandler) Create(c *gin.Context) {
  var input services.CreateWrestlerInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  w, err := h.wrestlerService.Create(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"wrestler": w})
}

func (h *WrestlerHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  view, err := h.wrestlerService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, view)
}

func (h *WrestlerHandler) Update(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.UpdateWrestlerInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  w, err := h.wrestlerService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"wrestler": w})
}

func (h *WrestlerHandler) Archive(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.wrestlerService.Archive(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *WrestlerHandler) Restore(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.wrestlerService.Restore(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *WrestlerHandler) Employ(c *gin.Context) {
  handleTransition(c, h.log, "employ", h.wrestlerService.Employ)
}

func (h *WrestlerHandler) Release(c *gin.Context) {
  handleTransition(c, h.log, "release", h.wrestlerService.Release)
}

func (h *WrestlerHandler) Injure(c *gin.Context) {
  handleTransition(c, h.log, "injure", h.wrestlerService.Injure)
}

func (h *WrestlerHandler) ClearFromInjury(c *gin.Context) {
  handleTransition(c, h.log, "clear_from_injury", h.wrestlerService.ClearFromInjury)
}

func (h *WrestlerHandler) Suspend(c *gin.Context) {
  handleTransition(c, h.log, "suspend", h.wrestlerService.Suspend)
}

func (h *WrestlerHandler) Reinstate(c *gin.Context) {
  handleTransition(c, h.log, "reinstate", h.wrestlerService.Reinstate)
}

func (h *WrestlerHandler) Retire(c *gin.Context) {
  handleTransition(c, h.log, "retire", h.wrestlerService.Retire)
}

func (h *WrestlerHandler) Unretire(c *gin.Context) {
  handleTransition(c, h.log, "unretire", h.wrestlerService.Unretire)
}
