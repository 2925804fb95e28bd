package handlers

import (
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/avenlabs/marketops-backend/internal/domain/qc"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/services"
)

type AssetQCHandler struct {
  log       *logger.Logger
  qcService services.AssetQCService
}

func NewAssetQCHandler(log *logger.Logger, qcService services.AssetQCService) *AssetQCHandler {
  return &AssetQCHandler{
    log:       log.With("handler", "AssetQCHandler"),
    qcService: qcService,
  }
}

type qcReviewRequest struct {
  QCScore      *int   `json:"qc_score"`
  QCRemarks    string `json:"qc_remarks"`
  QCDecision   string `json:"qc_decision"`
  QCReviewerID int    `json:"qc_reviewer_id"`
  UserRole     string `json:"user_role"`
}

type submitQCRequest struct {
  SubmittedBy  int  `json:"submitted_by"`
  SEOScore     int  `json:"seo_score"`
  GrammarScore int  `json:"grammar_score"`
  ReworkCount  *int `json:"rework_count"`
}

// QCReview handles POST /assetLibrary/:id/qc-review.
func (h *AssetQCHandler) QCReview(c *gin.Context) {
  assetID, err := strconv.Atoi(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_asset_id", err)
    return
  }
  var req qcReviewRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }

  asset, err := h.qcService.ReviewAsset(c.Request.Context(), assetID, qc.ReviewInput{
    Decision:   qc.Decision(req.QCDecision),
    ReviewerID: req.QCReviewerID,
    Role:       req.UserRole,
    Score:      req.QCScore,
    Remarks:    req.QCRemarks,
  })
  if err != nil {
    h.log.Warn("QC review rejected", "asset_id", assetID, "decision", req.QCDecision, "error", err)
    RespondAPIError(c, err)
    return
  }
  RespondOK(c, gin.H{"asset": asset})
}

// SubmitQC handles POST /assetLibrary/:id/submit-qc.
func (h *AssetQCHandler) SubmitQC(c *gin.Context) {
  assetID, err := strconv.Atoi(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_asset_id", err)
    return
  }
  var req submitQCRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }

  asset, err := h.qcService.SubmitAsset(c.Request.Context(), assetID, qc.SubmitInput{
    SubmittedBy:  req.SubmittedBy,
    SEOScore:     req.SEOScore,
    GrammarScore: req.GrammarScore,
    ReworkCount:  req.ReworkCount,
  })
  if err != nil {
    h.log.Warn("QC submission rejected", "asset_id", assetID, "error", err)
    RespondAPIError(c, err)
    return
  }
  RespondOK(c, gin.H{"asset": asset})
}
