package handlers

import (
  "net/http"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/squaredcircle/promoter-backend/internal/apierr"
)

type APIError struct {
  Message string `json:"message"`
  Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps a service error onto the wire using the
// status and code it carries, falling back to a 500.
func RespondServiceError(c *gin.Context, err error) {
  RespondError(c, apierr.StatusOf(err, http.StatusInternalServerError), apierr.CodeOf(err), err)
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
  id, err := uuid.Parse(c.Param(param))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return uuid.Nil, false
  }
  return id, true
}

// transitionRequest is the optional body of every lifecycle endpoint.
// An omitted date means "effective now".
type transitionRequest struct {
  At *time.Time `json:"at"`
}

func parseTransitionDate(c *gin.Context) (time.Time, bool) {
  var req transitionRequest
  if c.Request.ContentLength == 0 {
    return time.Time{}, true
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return time.Time{}, false
  }
  if req.At == nil {
    return time.Time{}, true
  }
  return *req.At, true
}
