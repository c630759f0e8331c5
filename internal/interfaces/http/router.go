package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/interfaces/http/middleware"
	"github.com/lipagate/lipagate/internal/interfaces/http/routes"
)

// setupRouter builds the gin engine with middleware and all route groups.
func (c *Container) setupRouter() *gin.Engine {
	registerValidators()

	switch c.cfg.Server.Mode {
	case "debug", "development":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestLogger(c.log))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
	})
	routes.SetupAccessRoutes(engine, &routes.AccessRouteConfig{
		AccessHandler:  c.hdlrs.accessHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupCronRoutes(engine, &routes.CronRouteConfig{
		CronHandler:    c.hdlrs.cronHandler,
		CronMiddleware: c.cronMiddleware,
	})
	routes.SetupPaymentRoutes(engine, &routes.PaymentRouteConfig{
		PaymentHandler: c.hdlrs.paymentHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupContentRoutes(engine, &routes.ContentRouteConfig{
		ContentHandler: c.hdlrs.contentHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		CatalogHandler: c.hdlrs.catalogHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupSubscriptionRoutes(engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: c.hdlrs.subscriptionHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	return engine
}
