package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/interfaces/http/handlers"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for catalog routes.
type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures product and price management routes.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	products := engine.Group("/api/products")
	products.Use(cfg.AuthMiddleware.RequireAuth())
	{
		products.POST("", cfg.CatalogHandler.CreateProduct)
		products.GET("", cfg.CatalogHandler.ListProducts)
		products.POST("/:sid/prices", cfg.CatalogHandler.CreatePrice)
	}
}
