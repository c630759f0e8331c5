package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/interfaces/http/handlers"
	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPaymentRoutes configures checkout and payment management routes.
// Checkout is public: customers claim a payment without an account.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	engine.POST("/api/checkout", cfg.PaymentHandler.Checkout)

	payments := engine.Group("/api/payments")
	payments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		payments.GET("", cfg.PaymentHandler.List)
		payments.POST("/:sid/confirm", cfg.PaymentHandler.Confirm)
	}
}
