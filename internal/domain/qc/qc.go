// Package qc holds the asset review workflow rules: who may decide, which
// decisions exist, and what each decision does to an asset. Everything here
// is pure; persistence and notification fan-out happen in the service layer.
package qc

import (
	"fmt"
	"strings"
	"time"

	"github.com/avenlabs/marketops-backend/internal/platform/apierr"
	"github.com/avenlabs/marketops-backend/internal/types"
)

// Decision is a reviewer verdict. The set is closed; anything else is a
// validation error.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
	DecisionRework   Decision = "rework"
)

// RoleAdmin is the only role allowed to record QC decisions. Matching is
// case-insensitive but exact otherwise: "Admin" passes, "admin " does not.
const RoleAdmin = "admin"

type ReviewInput struct {
	Decision   Decision
	ReviewerID int
	Role       string
	Score      *int
	Remarks    string
	Now        time.Time
}

type SubmitInput struct {
	SubmittedBy  int
	SEOScore     int
	GrammarScore int
	ReworkCount  *int
	Now          time.Time
}

// Review applies one QC decision to an asset and returns the updated asset
// plus the single notification the decision produces. The input asset is
// passed by value and never touched on failure.
//
// Every decision lands the asset in a fixed status:
//
//	approved -> QC Approved   (linking on,  rework count unchanged)
//	rejected -> QC Rejected   (linking off, rework count unchanged)
//	rework   -> Rework Required (linking off, rework count +1)
func Review(asset types.Asset, in ReviewInput) (types.Asset, types.Notification, error) {
	if !strings.EqualFold(in.Role, RoleAdmin) {
		return asset, types.Notification{}, apierr.Authorization("only administrators can perform QC reviews")
	}

	var (
		status   types.AssetStatus
		linking  bool
		notType  types.NotificationType
		notText  string
	)
	switch in.Decision {
	case DecisionApproved:
		status = types.AssetStatusQCApproved
		linking = true
		notType = types.NotificationSuccess
		notText = fmt.Sprintf("Asset %q approved!", asset.Name)
	case DecisionRejected:
		status = types.AssetStatusQCRejected
		linking = false
		notType = types.NotificationError
		notText = fmt.Sprintf("Asset %q rejected.", asset.Name)
	case DecisionRework:
		status = types.AssetStatusReworkRequired
		linking = false
		notType = types.NotificationWarning
		notText = fmt.Sprintf("Asset %q requires rework.", asset.Name)
		asset.ReworkCount++
	default:
		return asset, types.Notification{}, apierr.Validation("unknown QC decision %q", string(in.Decision))
	}

	now := in.Now
	asset.Status = status
	asset.LinkingActive = linking

	score := 0
	if in.Score != nil {
		score = *in.Score
	}
	asset.QCScore = &score
	asset.QCRemarks = in.Remarks
	reviewerID := in.ReviewerID
	asset.QCReviewerID = &reviewerID
	asset.QCReviewedAt = &now
	asset.UpdatedAt = &now

	notification := types.Notification{
		UserID:    asset.SubmittedBy,
		Title:     "QC Review",
		Message:   notText,
		Type:      notType,
		Read:      false,
		CreatedAt: now,
	}
	return asset, notification, nil
}

// Submit marks an asset as awaiting review. There is deliberately no role
// gate here: content creators submit, only admins review.
//
// Score fields follow the original truthy-overwrite contract: a zero score
// keeps whatever the asset already had, it does not reset. ReworkCount is
// applied only when supplied at all.
func Submit(asset types.Asset, in SubmitInput) (types.Asset, types.Notification, error) {
	now := in.Now

	asset.Status = types.AssetStatusPendingQCReview
	asset.LinkingActive = false
	submittedBy := in.SubmittedBy
	asset.SubmittedBy = &submittedBy
	asset.SubmittedAt = &now
	if in.SEOScore != 0 {
		asset.SEOScore = in.SEOScore
	}
	if in.GrammarScore != 0 {
		asset.GrammarScore = in.GrammarScore
	}
	if in.ReworkCount != nil {
		asset.ReworkCount = *in.ReworkCount
	}
	asset.UpdatedAt = &now

	notification := types.Notification{
		UserID:    nil,
		Title:     "QC Submission",
		Message:   fmt.Sprintf("Asset %q submitted for QC.", asset.Name),
		Type:      types.NotificationInfo,
		Read:      false,
		CreatedAt: now,
	}
	return asset, notification, nil
}
