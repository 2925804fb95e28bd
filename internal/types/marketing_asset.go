package types

import (
	"time"
)

// AssetStatus is the closed set of workflow states an asset can sit in.
type AssetStatus string

const (
	AssetStatusDraft           AssetStatus = "Draft"
	AssetStatusInProgress      AssetStatus = "In Progress"
	AssetStatusPendingQCReview AssetStatus = "Pending QC Review"
	AssetStatusReworkRequired  AssetStatus = "Rework Required"
	AssetStatusQCApproved      AssetStatus = "QC Approved"
	AssetStatusQCRejected      AssetStatus = "QC Rejected"
)

// Asset is one piece of creative work moving through production and QC
// review. It is stored as a record inside the assetLibrary collection, not
// as its own table, so unknown fields supplied by the frontend survive
// round-trips through the generic CRUD path.
type Asset struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Status        AssetStatus `json:"status"`
	QCScore       *int        `json:"qc_score,omitempty"`
	QCRemarks     string      `json:"qc_remarks"`
	QCReviewerID  *int        `json:"qc_reviewer_id,omitempty"`
	QCReviewedAt  *time.Time  `json:"qc_reviewed_at,omitempty"`
	ReworkCount   int         `json:"rework_count"`
	LinkingActive bool        `json:"linking_active"`
	SEOScore      int         `json:"seo_score,omitempty"`
	GrammarScore  int         `json:"grammar_score,omitempty"`
	SubmittedBy   *int        `json:"submitted_by,omitempty"`
	SubmittedAt   *time.Time  `json:"submitted_at,omitempty"`
	CreatedAt     *time.Time  `json:"created_at,omitempty"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty"`
}
