package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/infrastructure/token"
	"github.com/lipagate/lipagate/internal/shared/constants"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

// AuthMiddleware guards merchant routes with bearer JWT auth.
type AuthMiddleware struct {
	issuer *token.JWTIssuer
	logger logger.Interface
}

func NewAuthMiddleware(issuer *token.JWTIssuer, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		issuer: issuer,
		logger: logger,
	}
}

// RequireAuth rejects requests without a valid merchant access token and
// stores the merchant identity on the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.issuer.Verify(tok)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyMerchantID, claims.MerchantID)
		c.Set(constants.ContextKeyAdmin, claims.Admin)

		c.Next()
	}
}

// OptionalAuth stores the merchant identity when a valid token is present and
// passes anonymous requests through untouched. Access evaluation uses it to
// tell auth_required from paywall.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			c.Next()
			return
		}

		claims, err := m.issuer.Verify(tok)
		if err != nil {
			// Invalid token on an optional route is treated as anonymous.
			m.logger.Debugw("ignoring invalid token on optional route", "error", err)
			c.Next()
			return
		}

		c.Set(constants.ContextKeyMerchantID, claims.MerchantID)
		c.Set(constants.ContextKeyAdmin, claims.Admin)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// MerchantID reads the authenticated merchant ID from the context. ok is
// false on anonymous requests.
func MerchantID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyMerchantID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// IsAdmin reports whether the authenticated merchant has the admin flag.
func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get(constants.ContextKeyAdmin)
	if !exists {
		return false
	}
	admin, _ := v.(bool)
	return admin
}
