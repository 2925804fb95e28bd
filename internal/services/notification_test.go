package services

import (
  "context"
  "testing"
  "time"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/platform/apierr"
  "github.com/avenlabs/marketops-backend/internal/types"
)

func seedFeed(store *fakeCollections) {
  base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
  store.seed(types.CollectionNotifications,
    map[string]interface{}{
      "id": 1, "user_id": 2, "title": "QC Review", "message": "older",
      "type": "success", "read": false, "created_at": base.Format(time.RFC3339),
    },
    map[string]interface{}{
      "id": 2, "user_id": nil, "title": "QC Submission", "message": "broadcast",
      "type": "info", "read": false, "created_at": base.Add(time.Hour).Format(time.RFC3339),
    },
    map[string]interface{}{
      "id": 3, "user_id": 5, "title": "QC Review", "message": "other user",
      "type": "error", "read": true, "created_at": base.Add(2 * time.Hour).Format(time.RFC3339),
    },
  )
}

func TestNotificationListNewestFirst(t *testing.T) {
  store := newFakeCollections()
  seedFeed(store)
  svc := NewNotificationService(logger.NewNop(), store)

  all := svc.List(context.Background(), nil)
  if len(all) != 3 {
    t.Fatalf("count = %d, want 3", len(all))
  }
  if all[0].ID != 3 || all[1].ID != 2 || all[2].ID != 1 {
    t.Fatalf("order = %d,%d,%d, want 3,2,1", all[0].ID, all[1].ID, all[2].ID)
  }
}

func TestNotificationListFiltersByUserKeepsBroadcasts(t *testing.T) {
  store := newFakeCollections()
  seedFeed(store)
  svc := NewNotificationService(logger.NewNop(), store)

  userID := 2
  mine := svc.List(context.Background(), &userID)
  if len(mine) != 2 {
    t.Fatalf("count = %d, want 2 (own + broadcast)", len(mine))
  }
  for _, n := range mine {
    if n.UserID != nil && *n.UserID != 2 {
      t.Fatalf("leaked notification for user %v", *n.UserID)
    }
  }
}

func TestNotificationMarkRead(t *testing.T) {
  store := newFakeCollections()
  seedFeed(store)
  svc := NewNotificationService(logger.NewNop(), store)

  n, err := svc.MarkRead(context.Background(), 1)
  if err != nil {
    t.Fatalf("MarkRead failed: %v", err)
  }
  if !n.Read {
    t.Fatal("returned notification still unread")
  }

  stored := store.data[types.CollectionNotifications]
  idx := findRecordByID(stored, 1)
  if idx < 0 {
    t.Fatal("record vanished")
  }
  // Both legacy mirrors must flip together.
  if stored[idx]["read"] != true {
    t.Fatalf("stored read = %v", stored[idx]["read"])
  }
  if isRead, _ := stored[idx]["is_read"].(float64); isRead != 1 {
    t.Fatalf("stored is_read = %v, want 1", stored[idx]["is_read"])
  }
}

func TestNotificationMarkReadKeepsExtraFields(t *testing.T) {
  store := newFakeCollections()
  store.seed(types.CollectionNotifications, map[string]interface{}{
    "id": 1, "title": "QC Review", "message": "m", "type": "info",
    "read": false, "created_at": time.Now().UTC().Format(time.RFC3339),
    "campaign_slug": "summer-launch",
  })
  svc := NewNotificationService(logger.NewNop(), store)

  if _, err := svc.MarkRead(context.Background(), 1); err != nil {
    t.Fatalf("MarkRead failed: %v", err)
  }

  stored := store.data[types.CollectionNotifications][0]
  if stored["read"] != true {
    t.Fatalf("stored read = %v", stored["read"])
  }
  // Fields attached through generic CRUD survive the write-back, same as
  // the asset path.
  if stored["campaign_slug"] != "summer-launch" {
    t.Fatalf("extra field lost: %v", stored["campaign_slug"])
  }
}

func TestNotificationMarkReadMissing(t *testing.T) {
  svc := NewNotificationService(logger.NewNop(), newFakeCollections())
  if _, err := svc.MarkRead(context.Background(), 42); !apierr.IsCode(err, apierr.CodeNotFound) {
    t.Fatalf("error = %v, want not found", err)
  }
}

func TestDashboardStatsEmptyAssets(t *testing.T) {
  store := newFakeCollections()
  // Legacy feed spelling: text/is_read/time instead of message/read/created_at.
  store.seed(types.CollectionNotifications,
    map[string]interface{}{"id": 1, "text": "legacy", "type": "info", "is_read": 0, "time": time.Now().Format(time.RFC3339)},
    map[string]interface{}{"id": 2, "text": "legacy", "type": "info", "is_read": 1, "time": time.Now().Format(time.RFC3339)},
  )

  svc := NewDashboardService(logger.NewNop(), store)
  stats := svc.Stats(context.Background())

  if stats.TotalAssets != 0 {
    t.Fatalf("total_assets = %d, want 0", stats.TotalAssets)
  }
  if stats.QCApprovalRate != 0 {
    t.Fatalf("qc_approval_rate = %v, want 0 with no assets", stats.QCApprovalRate)
  }
  if stats.PendingReview != 0 {
    t.Fatalf("pending_review = %d, want 0", stats.PendingReview)
  }
  if len(stats.AssetsByStatus) != 0 {
    t.Fatalf("assets_by_status = %v, want empty", stats.AssetsByStatus)
  }
  if stats.UnreadNotifications != 1 {
    t.Fatalf("unread_notifications = %d, want 1 from legacy is_read", stats.UnreadNotifications)
  }
}

func TestDashboardStats(t *testing.T) {
  store := newFakeCollections()
  store.seed(types.CollectionAssetLibrary,
    map[string]interface{}{"id": 1, "status": "QC Approved"},
    map[string]interface{}{"id": 2, "status": "QC Approved"},
    map[string]interface{}{"id": 3, "status": "Pending QC Review"},
    map[string]interface{}{"id": 4, "status": "Rework Required"},
  )
  store.seed(types.CollectionCampaigns, map[string]interface{}{"id": 1})
  store.seed(types.CollectionUsers,
    map[string]interface{}{"id": 1},
    map[string]interface{}{"id": 2},
  )
  seedNotifications := []map[string]interface{}{
    {"id": 1, "read": false, "type": "info", "message": "m", "created_at": time.Now().Format(time.RFC3339)},
    {"id": 2, "read": true, "type": "info", "message": "m", "created_at": time.Now().Format(time.RFC3339)},
  }
  store.seed(types.CollectionNotifications, seedNotifications...)

  svc := NewDashboardService(logger.NewNop(), store)
  stats := svc.Stats(context.Background())

  if stats.TotalAssets != 4 {
    t.Fatalf("total_assets = %d", stats.TotalAssets)
  }
  if stats.PendingReview != 1 {
    t.Fatalf("pending_review = %d", stats.PendingReview)
  }
  if stats.QCApprovalRate != 50 {
    t.Fatalf("qc_approval_rate = %v, want 50", stats.QCApprovalRate)
  }
  if stats.AssetsByStatus["QC Approved"] != 2 {
    t.Fatalf("assets_by_status = %v", stats.AssetsByStatus)
  }
  if stats.TotalUsers != 2 || stats.TotalCampaigns != 1 {
    t.Fatalf("totals = users %d campaigns %d", stats.TotalUsers, stats.TotalCampaigns)
  }
  if stats.UnreadNotifications != 1 {
    t.Fatalf("unread_notifications = %d", stats.UnreadNotifications)
  }
}
