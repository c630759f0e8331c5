package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/interfaces/http/handlers"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
)

// ContentRouteConfig holds dependencies for content management routes.
type ContentRouteConfig struct {
	ContentHandler *handlers.ContentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupContentRoutes configures the merchant content library routes.
func SetupContentRoutes(engine *gin.Engine, cfg *ContentRouteConfig) {
	contents := engine.Group("/api/contents")
	contents.Use(cfg.AuthMiddleware.RequireAuth())
	{
		contents.POST("", cfg.ContentHandler.Create)
		contents.GET("", cfg.ContentHandler.List)
		contents.POST("/:sid/publish", cfg.ContentHandler.Publish)
	}
}
