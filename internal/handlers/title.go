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

type TitleHandler struct {
  log                 *logger.Logger
  titleService        services.TitleService
  championshipService services.ChampionshipService
}

func NewTitleHandler(log *logger.Logger, titleService services.TitleService, championshipService services.ChampionshipService) *TitleHandler {
  return &TitleHandler{
    log:                 log.With("handler", "TitleHandler"),
    titleService:        titleService,
    championshipService: championshipService,
  }
}

func (h *TitleHandler) List(c *gin.Context) {
  var filter *types.ActivationStatus
  if raw := c.Query("status"); raw != "" {
    status := types.ActivationStatus(raw)
    filter = &status
  }
  views, err := h.titleService.List(c.Request.Context(), filter)
  if err != nil {
    h.log.Error("List failed", "error", err)
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"titles": views})
}

func (h *TitleHandler) Create(c *gin.Context) {
  var input services.CreateTitleInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  title, err := h.titleService.Create(c.Request.Context(), input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"title": title})
}

func (h *TitleHandler) Get(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  view, err := h.titleService.Get(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, view)
}

func (h *TitleHandler) Update(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var input services.UpdateTitleInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  title, err := h.titleService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"title": title})
}

func (h *TitleHandler) Archive(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.titleService.Archive(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *TitleHandler) Restore(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  if err := h.titleService.Restore(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func (h *TitleHandler) Debut(c *gin.Context) {
  handleTransition(c, h.log, "debut", h.titleService.Debut)
}

func (h *TitleHandler) Pull(c *gin.Context) {
  handleTransition(c, h.log, "pull", h.titleService.Pull)
}

func (h *TitleHandler) Retire(c *gin.Context) {
  handleTransition(c, h.log, "retire", h.titleService.Retire)
}

func (h *TitleHandler) Unretire(c *gin.Context) {
  handleTransition(c, h.log, "unretire", h.titleService.Unretire)
}

type awardRequest struct {
  ChampionKind types.EntityKind `json:"champion_kind"`
  ChampionID   uuid.UUID        `json:"champion_id"`
  At           *time.Time       `json:"at,omitempty"`
}

func (h *TitleHandler) Award(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  var req awardRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  at := time.Time{}
  if req.At != nil {
    at = *req.At
  }
  reign, err := h.championshipService.Award(c.Request.Context(), id, req.ChampionKind, req.ChampionID, at)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"championship": reign})
}

func (h *TitleHandler) Lineage(c *gin.Context) {
  id, ok := parseID(c, "id")
  if !ok {
    return
  }
  reigns, err := h.championshipService.LineageForTitle(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"championships": reigns})
}
