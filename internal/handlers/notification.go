package handlers

import (
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/services"
)

type NotificationHandler struct {
  log                 *logger.Logger
  notificationService services.NotificationService
}

func NewNotificationHandler(log *logger.Logger, notificationService services.NotificationService) *NotificationHandler {
  return &NotificationHandler{
    log:                 log.With("handler", "NotificationHandler"),
    notificationService: notificationService,
  }
}

func (h *NotificationHandler) List(c *gin.Context) {
  var userID *int
  if raw := c.Query("user_id"); raw != "" {
    id, err := strconv.Atoi(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
      return
    }
    userID = &id
  }
  notifications := h.notificationService.List(c.Request.Context(), userID)
  RespondOK(c, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
  id, err := strconv.Atoi(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return
  }
  notification, err := h.notificationService.MarkRead(c.Request.Context(), id)
  if err != nil {
    RespondAPIError(c, err)
    return
  }
  RespondOK(c, gin.H{"notification": notification})
}
