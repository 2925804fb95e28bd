package services

import (
  "context"
  "sort"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/platform/apierr"
  "github.com/avenlabs/marketops-backend/internal/repos"
  "github.com/avenlabs/marketops-backend/internal/types"
)

// NotificationService serves the UI feed. Records already carry both legacy
// field spellings on the wire; internally only the canonical struct exists.
type NotificationService interface {
  List(ctx context.Context, userID *int) []types.Notification
  MarkRead(ctx context.Context, id int) (types.Notification, error)
}

type notificationService struct {
  log         *logger.Logger
  collections repos.CollectionRepo
}

func NewNotificationService(log *logger.Logger, collections repos.CollectionRepo) NotificationService {
  serviceLog := log.With("service", "NotificationService")
  return &notificationService{log: serviceLog, collections: collections}
}

func (s *notificationService) List(ctx context.Context, userID *int) []types.Notification {
  records := s.collections.Load(ctx, types.CollectionNotifications)
  out := make([]types.Notification, 0, len(records))
  for _, rec := range records {
    var n types.Notification
    if err := decodeRecord(rec, &n); err != nil {
      s.log.Warn("Notification record unreadable, skipping", "error", err)
      continue
    }
    // userID filters to one recipient but always includes broadcasts.
    if userID != nil && n.UserID != nil && *n.UserID != *userID {
      continue
    }
    out = append(out, n)
  }
  sort.Slice(out, func(i, j int) bool {
    if out[i].CreatedAt.Equal(out[j].CreatedAt) {
      return out[i].ID > out[j].ID
    }
    return out[i].CreatedAt.After(out[j].CreatedAt)
  })
  return out
}

func (s *notificationService) MarkRead(ctx context.Context, id int) (types.Notification, error) {
  records := s.collections.Load(ctx, types.CollectionNotifications)
  idx := findRecordByID(records, id)
  if idx < 0 {
    return types.Notification{}, apierr.NotFound("notification %d not found", id)
  }
  var n types.Notification
  if err := decodeRecord(records[idx], &n); err != nil {
    return types.Notification{}, apierr.Storage("notification %d could not be decoded", id)
  }
  n.Read = true
  rec, err := encodeRecord(n)
  if err != nil {
    return types.Notification{}, apierr.Storage("notification %d could not be encoded", id)
  }
  // Merging rewrites both read mirrors (read and is_read) in one step while
  // keeping any extra fields the record picked up through generic CRUD.
  records[idx] = mergeRecord(records[idx], rec)
  if err := s.collections.Save(ctx, types.CollectionNotifications, records); err != nil {
    s.log.Warn("Notification write failed, continuing with in-memory result", "notification_id", id, "error", err)
  }
  return n, nil
}
