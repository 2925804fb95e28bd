package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/avenlabs/marketops-backend/internal/services"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

type sendOTPRequest struct {
  Email string `json:"email"`
}

type verifyOTPRequest struct {
  ChallengeID string `json:"challenge_id"`
  Code        string `json:"code"`
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
  var req sendOTPRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  challengeID, code, err := h.authService.SendOTP(c.Request.Context(), req.Email)
  if err != nil {
    RespondAPIError(c, err)
    return
  }
  // Mock auth: the code rides back in the response because nothing sends
  // mail here.
  RespondOK(c, gin.H{"challenge_id": challengeID, "code": code})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
  var req verifyOTPRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  token, err := h.authService.VerifyOTP(c.Request.Context(), req.ChallengeID, req.Code)
  if err != nil {
    RespondAPIError(c, err)
    return
  }
  RespondOK(c, gin.H{"token": token})
}
