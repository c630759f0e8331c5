package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lipagate/lipagate/internal/shared/constants"
	"github.com/lipagate/lipagate/internal/shared/logger"
	"github.com/lipagate/lipagate/internal/shared/utils"
)

// CronAuthMiddleware guards the cron endpoints with a shared bearer secret.
// When no secret is configured the endpoints are open, which suits
// deployments where the scheduler runs in-process and the HTTP trigger is a
// local convenience.
type CronAuthMiddleware struct {
	secret string
	logger logger.Interface
}

func NewCronAuthMiddleware(secret string, logger logger.Interface) *CronAuthMiddleware {
	return &CronAuthMiddleware{
		secret: secret,
		logger: logger,
	}
}

// RequireCronSecret checks `Authorization: Bearer <secret>` when a secret is set.
func (m *CronAuthMiddleware) RequireCronSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader(constants.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" ||
			subtle.ConstantTimeCompare([]byte(parts[1]), []byte(m.secret)) != 1 {
			m.logger.Warnw("cron endpoint rejected", "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
