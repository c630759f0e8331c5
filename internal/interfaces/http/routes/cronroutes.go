package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/interfaces/http/handlers"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
)

// CronRouteConfig holds dependencies for the external cron trigger routes.
type CronRouteConfig struct {
	CronHandler    *handlers.CronHandler
	CronMiddleware *middleware.CronAuthMiddleware
}

// SetupCronRoutes configures the sweep trigger endpoints. GET is kept
// alongside POST because common cron services only issue GETs.
func SetupCronRoutes(engine *gin.Engine, cfg *CronRouteConfig) {
	cron := engine.Group("/api/cron")
	cron.Use(cfg.CronMiddleware.RequireCronSecret())
	{
		cron.GET("/subscriptions", cfg.CronHandler.SweepSubscriptions)
		cron.POST("/subscriptions", cfg.CronHandler.SweepSubscriptions)
		cron.GET("/check-trials", cfg.CronHandler.CheckTrials)
	}

	// Legacy trigger path, same sweep and token convention.
	engine.POST("/api/subscriptions/process-expiry",
		cfg.CronMiddleware.RequireCronSecret(),
		cfg.CronHandler.SweepSubscriptions,
	)
}
