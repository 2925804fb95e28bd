package services

import (
  "context"
  "encoding/json"
  "fmt"
  "os"
  "strings"
  "time"
  goredis "github.com/redis/go-redis/v9"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/types"
)

// NotificationBus fans emitted notifications out to interested consumers
// (the frontend feed subscribes through a relay). Publishing is best-effort:
// the asset transition has already been persisted by the time Publish runs,
// and a dropped message only costs a live toast, not the stored record.
type NotificationBus interface {
  Publish(ctx context.Context, n types.Notification) error
  Close() error
}

type redisNotificationBus struct {
  log     *logger.Logger
  rdb     *goredis.Client
  channel string
}

func NewRedisNotificationBus(log *logger.Logger) (NotificationBus, error) {
  if log == nil {
    return nil, fmt.Errorf("logger required")
  }

  addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
  if addr == "" {
    return nil, fmt.Errorf("missing REDIS_ADDR")
  }
  ch := strings.TrimSpace(os.Getenv("REDIS_CHANNEL"))
  if ch == "" {
    ch = "notifications"
  }

  rdb := goredis.NewClient(&goredis.Options{
    Addr:        addr,
    DialTimeout: 5 * time.Second,
  })

  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if err := rdb.Ping(ctx).Err(); err != nil {
    _ = rdb.Close()
    return nil, fmt.Errorf("redis ping: %w", err)
  }

  return &redisNotificationBus{
    log:     log.With("service", "RedisNotificationBus"),
    rdb:     rdb,
    channel: ch,
  }, nil
}

func (b *redisNotificationBus) Publish(ctx context.Context, n types.Notification) error {
  if b == nil || b.rdb == nil {
    return fmt.Errorf("notification bus not initialized")
  }
  raw, err := json.Marshal(n)
  if err != nil {
    return err
  }
  return b.rdb.Publish(ctx, b.channel, raw).Err()
}

func (b *redisNotificationBus) Close() error {
  if b == nil || b.rdb == nil {
    return nil
  }
  return b.rdb.Close()
}

type nopNotificationBus struct{}

// NewNopNotificationBus backs deployments without Redis. Tests use it too.
func NewNopNotificationBus() NotificationBus {
  return nopNotificationBus{}
}

func (nopNotificationBus) Publish(ctx context.Context, n types.Notification) error { return nil }
func (nopNotificationBus) Close() error                                            { return nil }
