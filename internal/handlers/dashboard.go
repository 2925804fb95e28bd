package handlers

import (
  "github.com/gin-gonic/gin"
  "github.com/avenlabs/marketops-backend/internal/services"
)

type DashboardHandler struct {
  dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
  return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
  stats := h.dashboardService.Stats(c.Request.Context())
  RespondOK(c, gin.H{"stats": stats})
}
