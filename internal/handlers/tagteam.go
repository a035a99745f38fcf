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

type TagTeamHandler struct {
  log            *logger.Logger
  tagTeamService services.TagTeamService
}

func NewTagTeamHandler(log *logger.Logger, tagTeamService services.TagTeamService) *TagTeamHandler {
  return &TagTeamHandler{
    log:            log.With("handler", "TagTeamHandler"),
    tagTeamService: tagTeamService,
  }
}

func (h *TagTeamHandler) List(c *gin.Context) {
  var filter *types.RosterStatus
  if raw := c.Query("status"); raw != "" {
    status := types.RosterStatus(raw)
    filter = &status
  }
  views, err := h.tagTeamService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"tag_teams": views})
}

func (h *TagTeamHandler) Create(c *gin.Context) {
  var input services.CreateTagTeamInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  team, err := h.tagTeamService.Create(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"tag_team": team})
}

func (h *TagTeamHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  view, err := h.tagTeamService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, view)
}

func (h *TagTeamHandler) Update(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.UpdateTagTeamInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  team, err := h.tagTeamService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"tag_team": team})
}

func (h *TagTeamHandler) Archive(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.tagTeamService.Archive(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *TagTeamHandler) Restore(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.tagTeamService.Restore(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

type partnerRequest struct {
  WrestlerID uuid.UUID  `json:"wrestler_id"`
  At         *time.Time `json:"at,omitempty"`
}

func (h *TagTeamHandler) AddPartner(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req partnerRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  at := time.Time{}
  if req.At != nil {
    at = *req.At
  }
  if err := h.tagTeamService.AddPartner(c.Request.Context(), id, req.WrestlerID, at); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *TagTeamHandler) RemovePartner(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req partnerRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  at := time.Time{}
  if req.At != nil {
    at = *req.At
  }
  if err := h.tagTeamService.RemovePartner(c.Request.Context(), id, req.WrestlerID, at); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *TagTeamHandler) Employ(c *gin.Context) {
  handleTransition(c, h.log, "employ", h.tagTeamService.Employ)
}

func (h *TagTeamHandler) Release(c *gin.Context) {
  handleTransition(c, h.log, "release", h.tagTeamService.Release)
}

func (h *TagTeamHandler) Suspend(c *gin.Context) {
  handleTransition(c, h.log, "suspend", h.tagTeamService.Suspend)
}

func (h *TagTeamHandler) Reinstate(c *gin.Context) {
  handleTransition(c, h.log, "reinstate", h.tagTeamService.Reinstate)
}

func (h *TagTeamHandler) Retire(c *gin.Context) {
  handleTransition(c, h.log, "retire", h.tagTeamService.Retire)
}

func (h *TagTeamHandler) Unretire(c *gin.Context) {
  handleTransition(c, h.log, "unretire", h.tagTeamService.Unretire)
}
