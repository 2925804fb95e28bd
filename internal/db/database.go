package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/avenlabs/marketops-backend/internal/types"
  "github.com/avenlabs/marketops-backend/internal/utils"
  "github.com/avenlabs/marketops-backend/internal/logger"
)

type DatabaseService struct {
  db  *gorm.DB
  log *logger.Logger
}

// NewDatabaseService opens the backing store. DB_DRIVER selects postgres
// (default) or sqlite; sqlite keeps local development and CI off a running
// Postgres.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
  serviceLog := log.With("service", "DatabaseService")

  driver := utils.GetEnv("DB_DRIVER", "postgres", log)

  var (
    db  *gorm.DB
    err error
  )
  switch driver {
  case "sqlite":
    sqlitePath := utils.GetEnv("SQLITE_PATH", "marketops.db", log)
    serviceLog.Info("Connecting to SQLite...", "path", sqlitePath)
    db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
  default:
    pgHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
    pgPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
    pgUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
    pgPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
    pgName := utils.GetEnv("POSTGRES_NAME", "marketops", log)
    dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, pgHost, pgPort, pgName)
    serviceLog.Info("Connecting to Postgres...", "host", pgHost, "database", pgName)
    db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
  }
  if err != nil {
    serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
    return nil, fmt.Errorf("Failed to connect to %s: %w", driver, err)
  }

  return &DatabaseService{db: db, log: serviceLog}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
  s.log.Info("Auto migrating tables...")
  if err := s.db.AutoMigrate(&types.Collection{}); err != nil {
    s.log.Error("Auto migration failed", "error", err)
    return err
  }
  return nil
}

func (s *DatabaseService) DB() *gorm.DB {
  return s.db
}
