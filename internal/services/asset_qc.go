package services

import (
  "context"
  "time"
  "github.com/avenlabs/marketops-backend/internal/domain/qc"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/platform/apierr"
  "github.com/avenlabs/marketops-backend/internal/repos"
  "github.com/avenlabs/marketops-backend/internal/types"
)

// AssetQCService runs the review workflow against the collection store.
//
// Each call is an unlocked read-modify-write over the whole assetLibrary
// document: concurrent calls against the same asset race and the last write
// wins. The asset write and the notification write are two separate
// best-effort saves; a crash between them leaves a transitioned asset with
// no feed entry, which callers accept.
type AssetQCService interface {
  ReviewAsset(ctx context.Context, assetID int, in qc.ReviewInput) (types.Asset, error)
  SubmitAsset(ctx context.Context, assetID int, in qc.SubmitInput) (types.Asset, error)
}

type assetQCService struct {
  log         *logger.Logger
  collections repos.CollectionRepo
  bus         NotificationBus
}

func NewAssetQCService(log *logger.Logger, collections repos.CollectionRepo, bus NotificationBus) AssetQCService {
  serviceLog := log.With("service", "AssetQCService")
  return &assetQCService{log: serviceLog, collections: collections, bus: bus}
}

func (s *assetQCService) ReviewAsset(ctx context.Context, assetID int, in qc.ReviewInput) (types.Asset, error) {
  if in.Now.IsZero() {
    in.Now = time.Now().UTC()
  }
  return s.transition(ctx, assetID, func(asset types.Asset) (types.Asset, types.Notification, error) {
    return qc.Review(asset, in)
  })
}

func (s *assetQCService) SubmitAsset(ctx context.Context, assetID int, in qc.SubmitInput) (types.Asset, error) {
  if in.Now.IsZero() {
    in.Now = time.Now().UTC()
  }
  return s.transition(ctx, assetID, func(asset types.Asset) (types.Asset, types.Notification, error) {
    return qc.Submit(asset, in)
  })
}

func (s *assetQCService) transition(ctx context.Context, assetID int, apply func(types.Asset) (types.Asset, types.Notification, error)) (types.Asset, error) {
  assets := s.collections.Load(ctx, types.CollectionAssetLibrary)
  idx := findRecordByID(assets, assetID)
  if idx < 0 {
    return types.Asset{}, apierr.NotFound("asset %d not found", assetID)
  }

  var asset types.Asset
  if err := decodeRecord(assets[idx], &asset); err != nil {
    s.log.Error("Asset record unreadable", "asset_id", assetID, "error", err)
    return types.Asset{}, apierr.Storage("asset %d could not be decoded", assetID)
  }

  updated, notification, err := apply(asset)
  if err != nil {
    return types.Asset{}, err
  }

  // Merge keeps any extra fields the frontend attached through generic CRUD.
  fields, err := encodeRecord(updated)
  if err != nil {
    return types.Asset{}, apierr.Storage("asset %d could not be encoded", assetID)
  }
  assets[idx] = mergeRecord(assets[idx], fields)
  if err := s.collections.Save(ctx, types.CollectionAssetLibrary, assets); err != nil {
    s.log.Warn("Asset write failed, continuing with in-memory result", "asset_id", assetID, "error", err)
  }

  s.appendNotification(ctx, notification)
  return updated, nil
}

func (s *assetQCService) appendNotification(ctx context.Context, n types.Notification) {
  feed := s.collections.Load(ctx, types.CollectionNotifications)
  n.ID = nextRecordID(feed)
  rec, err := encodeRecord(n)
  if err != nil {
    s.log.Warn("Notification encode failed", "error", err)
    return
  }
  feed = append(feed, rec)
  if err := s.collections.Save(ctx, types.CollectionNotifications, feed); err != nil {
    s.log.Warn("Notification write failed", "notification_id", n.ID, "error", err)
  }
  if err := s.bus.Publish(ctx, n); err != nil {
    s.log.Warn("Notification publish failed", "notification_id", n.ID, "error", err)
  }
}
