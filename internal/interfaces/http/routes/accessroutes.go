package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/interfaces/http/handlers"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
)

// AccessRouteConfig holds dependencies for the access decision routes.
type AccessRouteConfig struct {
	AccessHandler  *handlers.AccessHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAccessRoutes configures the public access evaluators. Authentication
// is optional; a valid token only identifies the viewer.
func SetupAccessRoutes(engine *gin.Engine, cfg *AccessRouteConfig) {
	access := engine.Group("/api/access")
	access.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		access.GET("/content/:sid", cfg.AccessHandler.CheckContentAccess)
		access.GET("/community/:username", cfg.AccessHandler.CheckCommunityAccess)
	}
}
