package services

import (
  "context"
  "golang.org/x/sync/errgroup"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/repos"
  "github.com/avenlabs/marketops-backend/internal/types"
)

// DashboardService computes the admin dashboard aggregates by reduction over
// the collections on every request. The five collection reads run
// concurrently; Load never fails, so neither does Stats.
type DashboardService interface {
  Stats(ctx context.Context) types.DashboardStats
}

type dashboardService struct {
  log         *logger.Logger
  collections repos.CollectionRepo
}

func NewDashboardService(log *logger.Logger, collections repos.CollectionRepo) DashboardService {
  serviceLog := log.With("service", "DashboardService")
  return &dashboardService{log: serviceLog, collections: collections}
}

func (s *dashboardService) Stats(ctx context.Context) types.DashboardStats {
  var (
    assets, notifications           []map[string]interface{}
    campaigns, servicesCol, users   []map[string]interface{}
  )

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error { assets = s.collections.Load(gctx, types.CollectionAssetLibrary); return nil })
  g.Go(func() error { notifications = s.collections.Load(gctx, types.CollectionNotifications); return nil })
  g.Go(func() error { campaigns = s.collections.Load(gctx, types.CollectionCampaigns); return nil })
  g.Go(func() error { servicesCol = s.collections.Load(gctx, types.CollectionServices); return nil })
  g.Go(func() error { users = s.collections.Load(gctx, types.CollectionUsers); return nil })
  _ = g.Wait()

  stats := types.DashboardStats{
    TotalAssets:    len(assets),
    AssetsByStatus: map[string]int{},
    TotalCampaigns: len(campaigns),
    TotalServices:  len(servicesCol),
    TotalUsers:     len(users),
  }

  approved := 0
  for _, rec := range assets {
    status, _ := rec["status"].(string)
    if status == "" {
      status = string(types.AssetStatusDraft)
    }
    stats.AssetsByStatus[status]++
    switch types.AssetStatus(status) {
    case types.AssetStatusPendingQCReview:
      stats.PendingReview++
    case types.AssetStatusQCApproved:
      approved++
    }
  }
  if stats.TotalAssets > 0 {
    stats.QCApprovalRate = float64(approved) / float64(stats.TotalAssets) * 100
  }

  for _, rec := range notifications {
    var n types.Notification
    if err := decodeRecord(rec, &n); err != nil {
      continue
    }
    if !n.Read {
      stats.UnreadNotifications++
    }
  }
  return stats
}
