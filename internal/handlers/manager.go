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

type ManagerHandler struct {
  log            *logger.Logger
  managerService services.ManagerService
}

func NewManagerHandler(log *logger.Logger, managerService services.ManagerService) *ManagerHandler {
  return &ManagerHandler{
    log:            log.With("handler", "ManagerHandler"),
    managerService: managerService,
  }
}

func (h *ManagerHandler) List(c *gin.Context) {
  var filter *types.RosterStatus
  if raw := c.Query("status"); raw != "" {
    status := types.RosterStatus(raw)
    filter = &status
  }
  views, err := h.managerService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"managers": views})
}

func (h *ManagerHandler) Create(c *gin.Context) {
  var input services.CreateManagerInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  m, err := h.managerService.Create(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"manager": m})
}

func (h *ManagerHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  view, err := h.managerService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, view)
}

func (h *ManagerHandler) Update(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.UpdateManagerInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  m, err := h.managerService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"manager": m})
}

func (h *ManagerHandler) Archive(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.managerService.Archive(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *ManagerHandler) Restore(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.managerService.Restore(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

type clientRequest struct {
  ClientKind types.EntityKind `json:"client_kind"`
  ClientID   uuid.UUID        `json:"client_id"`
  At         *time.Time       `json:"at,omitempty"`
}

func (h *ManagerHandler) HireClient(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req clientRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  at := time.Time{}
  if req.At != nil {
    at = *req.At
  }
  if err := h.managerService.HireClient(c.Request.Context(), id, req.ClientKind, req.ClientID, at); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *ManagerHandler) DropClient(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req clientRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  at := time.Time{}
  if req.At != nil {
    at = *req.At
  }
  if err := h.managerService.DropClient(c.Request.Context(), id, req.ClientKind, req.ClientID, at); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *ManagerHandler) Clients(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  clients, err := h.managerService.Clients(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"clients": clients})
}

func (h *ManagerHandler) Employ(c *gin.Context) {
  handleTransition(c, h.log, "employ", h.managerService.Employ)
}

func (h *ManagerHandler) Release(c *gin.Context) {
  handleTransition(c, h.log, "release", h.managerService.Release)
}

func (h *ManagerHandler) Injure(c *gin.Context) {
  handleTransition(c, h.log, "injure", h.managerService.Injure)
}

func (h *ManagerHandler) ClearFromInjury(c *gin.Context) {
  handleTransition(c, h.log, "clear_from_injury", h.managerService.ClearFromInjury)
}

func (h *ManagerHandler) Suspend(c *gin.Context) {
  handleTransition(c, h.log, "suspend", h.managerService.Suspend)
}

func (h *ManagerHandler) Reinstate(c *gin.Context) {
  handleTransition(c, h.log, "reinstate", h.managerService.Reinstate)
}

func (h *ManagerHandler) Retire(c *gin.Context) {
  handleTransition(c, h.log, "retire", h.managerService.Retire)
}

func (h *ManagerHandler) Unretire(c *gin.Context) {
  handleTransition(c, h.log, "unretire", h.managerService.Unretire)
}
