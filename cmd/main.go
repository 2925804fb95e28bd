package main

import (
  "context"
  "fmt"
  "os"
  "time"
  "github.com/avenlabs/marketops-backend/internal/logger"
  "github.com/avenlabs/marketops-backend/internal/utils"
  "github.com/avenlabs/marketops-backend/internal/db"
  "github.com/avenlabs/marketops-backend/internal/observability"
  "github.com/avenlabs/marketops-backend/internal/repos"
  "github.com/avenlabs/marketops-backend/internal/services"
  "github.com/avenlabs/marketops-backend/internal/handlers"
  "github.com/avenlabs/marketops-backend/internal/middleware"
  "github.com/avenlabs/marketops-backend/internal/server"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  otpTTL := utils.GetEnvAsInt("OTP_TTL", 300, log)
  authRequired := utils.GetEnvAsBool("AUTH_REQUIRED", false, log)
  tracing := utils.GetEnvAsBool("OTEL_ENABLED", false, log)

  // Tracing
  shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "marketops-backend",
    Environment: utils.GetEnv("ENVIRONMENT", "development", log),
  })
  if shutdownOtel != nil {
    defer func() {
      ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
      defer cancel()
      _ = shutdownOtel(ctx)
    }()
  }

  // Database
  databaseService, err := db.NewDatabaseService(log)
  if err != nil {
    log.Error("Database init failed", "error", err)
    os.Exit(1)
  }
  if err = databaseService.AutoMigrateAll(); err != nil {
    log.Warn("Auto migration failed", "error", err)
  }
  theDB := databaseService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  collectionRepo := repos.NewCollectionRepo(theDB, log)

  // Notification bus
  notificationBus, err := services.NewRedisNotificationBus(log)
  if err != nil {
    log.Warn("Redis notification bus unavailable, notifications stay store-only", "error", err)
    notificationBus = services.NewNopNotificationBus()
  }
  defer notificationBus.Close()

  // Services
  log.Info("Setting up services from main...")
  assetQCService := services.NewAssetQCService(log, collectionRepo, notificationBus)
  collectionService := services.NewCollectionService(log, collectionRepo)
  dashboardService := services.NewDashboardService(log, collectionRepo)
  notificationService := services.NewNotificationService(log, collectionRepo)
  authService := services.NewAuthService(log, collectionRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(otpTTL)*time.Second)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  assetQCHandler := handlers.NewAssetQCHandler(log, assetQCService)
  collectionHandler := handlers.NewCollectionHandler(log, collectionService)
  dashboardHandler := handlers.NewDashboardHandler(dashboardService)
  notificationHandler := handlers.NewNotificationHandler(log, notificationService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:         authHandler,
    AuthMiddleware:      authMiddleware,
    AssetQCHandler:      assetQCHandler,
    CollectionHandler:   collectionHandler,
    DashboardHandler:    dashboardHandler,
    NotificationHandler: notificationHandler,
    AuthRequired:        authRequired,
    Tracing:             tracing,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
