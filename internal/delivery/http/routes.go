package http

import (
	"github.com/dishlens/backend/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(MetricsMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Operational endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		dishes := v1.Group("/dishes")
		{
			dishes.GET("", handler.ListDishes)
			dishes.POST("/refresh", handler.RefreshCatalog)
			dishes.GET("/:name", handler.GetDish)
			dishes.GET("/:name/calorie-share", handler.GetCalorieShare)
		}

		calories := v1.Group("/calories")
		{
			calories.POST("/maintenance", handler.CalculateMaintenance)
			calories.GET("/options", handler.CalorieOptions)
		}
	}

	return router
}
