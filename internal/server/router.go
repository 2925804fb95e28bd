package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/avenlabs/marketops-backend/internal/handlers"
  "github.com/avenlabs/marketops-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler         *handlers.AuthHandler
  AuthMiddleware      *middleware.AuthMiddleware
  AssetQCHandler      *handlers.AssetQCHandler
  CollectionHandler   *handlers.CollectionHandler
  DashboardHandler    *handlers.DashboardHandler
  NotificationHandler *handlers.NotificationHandler
  AuthRequired        bool
  Tracing             bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  if cfg.Tracing {
    router.Use(otelgin.Middleware("marketops-backend"))
  }

  // Cors: the admin frontend is served from anywhere, so the surface stays
  // permissive. OPTIONS preflight is answered by this middleware on every
  // route.
  router.Use(cors.New(cors.Config{
    AllowAllOrigins:  true,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/auth/send-otp", cfg.AuthHandler.SendOTP)
  router.POST("/auth/verify-otp", cfg.AuthHandler.VerifyOTP)

// ===============
// || API       ||
// ===============
  api := router.Group("/")
  if cfg.AuthRequired {
    api.Use(cfg.AuthMiddleware.RequireAuth())
  }
  // QC workflow
  api.POST("/assetLibrary/:id/qc-review", cfg.AssetQCHandler.QCReview)
  api.POST("/assetLibrary/:id/submit-qc", cfg.AssetQCHandler.SubmitQC)
  // Dashboard
  api.GET("/dashboard/stats", cfg.DashboardHandler.Stats)
  // Notification feed
  api.GET("/notifications", cfg.NotificationHandler.List)
  api.POST("/notifications/:id/read", cfg.NotificationHandler.MarkRead)
  // Generic collection CRUD (static routes above win over these)
  api.GET("/:collection", cfg.CollectionHandler.List)
  api.POST("/:collection", cfg.CollectionHandler.Create)
  api.GET("/:collection/:id", cfg.CollectionHandler.Get)
  api.PUT("/:collection/:id", cfg.CollectionHandler.Update)
  api.DELETE("/:collection/:id", cfg.CollectionHandler.Delete)

  return router
}
