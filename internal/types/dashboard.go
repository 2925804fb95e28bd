package types

// DashboardStats is the aggregate payload behind GET /dashboard/stats.
// Everything here is computed by reduction over collections on each request;
// nothing is cached or precomputed.
type DashboardStats struct {
	TotalAssets         int            `json:"total_assets"`
	AssetsByStatus      map[string]int `json:"assets_by_status"`
	PendingReview       int            `json:"pending_review"`
	QCApprovalRate      float64        `json:"qc_approval_rate"`
	TotalCampaigns      int            `json:"total_campaigns"`
	TotalServices       int            `json:"total_services"`
	TotalUsers          int            `json:"total_users"`
	UnreadNotifications int            `json:"unread_notifications"`
}
