package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures merchant signup and login.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}
