package services

import (
  "context"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/platform/apierr"
  "github.com/avenlabs/marketops-backend/internal/repos"
)

// CollectionService is the generic CRUD path over any named collection:
// create assigns the next integer id, update merges supplied fields over the
// stored record, delete filters by id. No guards beyond id uniqueness.
type CollectionService interface {
  List(ctx context.Context, name string) []map[string]interface{}
  Get(ctx context.Context, name string, id int) (map[string]interface{}, error)
  Create(ctx context.Context, name string, record map[string]interface{}) map[string]interface{}
  Update(ctx context.Context, name string, id int, fields map[string]interface{}) (map[string]interface{}, error)
  Delete(ctx context.Context, name string, id int)
}

type collectionService struct {
  log         *logger.Logger
  collections repos.CollectionRepo
}

func NewCollectionService(log *logger.Logger, collections repos.CollectionRepo) CollectionService {
  serviceLog := log.With("service", "CollectionService")
  return &collectionService{log: serviceLog, collections: collections}
}

func (s *collectionService) List(ctx context.Context, name string) []map[string]interface{} {
  return s.collections.Load(ctx, name)
}

func (s *collectionService) Get(ctx context.Context, name string, id int) (map[string]interface{}, error) {
  records := s.collections.Load(ctx, name)
  idx := findRecordByID(records, id)
  if idx < 0 {
    return nil, apierr.NotFound("%s/%d not found", name, id)
  }
  return records[idx], nil
}

func (s *collectionService) Create(ctx context.Context, name string, record map[string]interface{}) map[string]interface{} {
  if record == nil {
    record = map[string]interface{}{}
  }
  records := s.collections.Load(ctx, name)
  record["id"] = nextRecordID(records)
  records = append(records, record)
  if err := s.collections.Save(ctx, name, records); err != nil {
    s.log.Warn("Collection write failed, continuing with in-memory result", "collection", name, "error", err)
  }
  return record
}

func (s *collectionService) Update(ctx context.Context, name string, id int, fields map[string]interface{}) (map[string]interface{}, error) {
  records := s.collections.Load(ctx, name)
  idx := findRecordByID(records, id)
  if idx < 0 {
    return nil, apierr.NotFound("%s/%d not found", name, id)
  }
  // The id can never be reassigned through a merge.
  delete(fields, "id")
  records[idx] = mergeRecord(records[idx], fields)
  if err := s.collections.Save(ctx, name, records); err != nil {
    s.log.Warn("Collection write failed, continuing with in-memory result", "collection", name, "error", err)
  }
  return records[idx], nil
}

func (s *collectionService) Delete(ctx context.Context, name string, id int) {
  records := s.collections.Load(ctx, name)
  filtered := make([]map[string]interface{}, 0, len(records))
  for _, rec := range records {
    if recID, ok := recordID(rec); ok && recID == id {
      continue
    }
    filtered = append(filtered, rec)
  }
  if err := s.collections.Save(ctx, name, filtered); err != nil {
    s.log.Warn("Collection write failed after delete", "collection", name, "error", err)
  }
}
