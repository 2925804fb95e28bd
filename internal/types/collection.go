package types

import (
	"time"
	"gorm.io/datatypes"
)

// Collection is one row of the schemaless document table: a named JSON array
// acting as a lightweight "table". Every record set (assets, notifications,
// users, campaigns, ...) lives in exactly one row, keyed by name.
type Collection struct {
	Name      string         `gorm:"column:name;primaryKey" json:"name"`
	Data      datatypes.JSON `gorm:"column:data;type:jsonb" json:"data"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (Collection) TableName() string { return "collection" }

// Well-known collection names.
const (
	CollectionAssetLibrary  = "assetLibrary"
	CollectionNotifications = "notifications"
	CollectionUsers         = "users"
	CollectionCampaigns     = "campaigns"
	CollectionServices      = "services"
	CollectionOTPChallenges = "otp_challenges"
)
