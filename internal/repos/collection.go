package repos

import (
  "context"
  "encoding/json"
  "time"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/types"
)

// CollectionRepo persists named JSON arrays in the collection table.
//
// Load never surfaces failures: a missing row, a broken payload, or a dead
// database all degrade to the embedded defaults (empty slice when the name
// has none). Save is a plain upsert by name; callers treat write failures as
// log-and-continue, so a 200 response is not a durability promise.
type CollectionRepo interface {
  Load(ctx context.Context, name string) []map[string]interface{}
  Save(ctx context.Context, name string, records []map[string]interface{}) error
}

type collectionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCollectionRepo(db *gorm.DB, baseLog *logger.Logger) CollectionRepo {
  repoLog := baseLog.With("repo", "CollectionRepo")
  return &collectionRepo{db: db, log: repoLog}
}

func (cr *collectionRepo) Load(ctx context.Context, name string) []map[string]interface{} {
  var row types.Collection
  err := cr.db.WithContext(ctx).
    Where("name = ?", name).
    First(&row).Error
  if err != nil {
    if err != gorm.ErrRecordNotFound {
      cr.log.Warn("Collection read failed, falling back to defaults", "collection", name, "error", err)
    }
    return DefaultRecords(name)
  }

  var records []map[string]interface{}
  if err := json.Unmarshal(row.Data, &records); err != nil {
    cr.log.Warn("Collection payload unreadable, falling back to defaults", "collection", name, "error", err)
    return DefaultRecords(name)
  }
  if records == nil {
    records = []map[string]interface{}{}
  }
  return records
}

func (cr *collectionRepo) Save(ctx context.Context, name string, records []map[string]interface{}) error {
  if records == nil {
    records = []map[string]interface{}{}
  }
  data, err := json.Marshal(records)
  if err != nil {
    return err
  }
  row := types.Collection{
    Name:      name,
    Data:      data,
    UpdatedAt: time.Now().UTC(),
  }
  return cr.db.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "name"}},
      UpdateAll: true,
    }).
    Create(&row).Error
}
