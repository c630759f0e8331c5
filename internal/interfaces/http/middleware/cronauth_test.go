package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lipagate/lipagate/internal/shared/logger"
)

func cronTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	m := NewCronAuthMiddleware(secret, logger.NewLogger())
	engine.GET("/cron", m.RequireCronSecret(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestRequireCronSecret(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
	}{
		{
			name:       "no secret configured leaves endpoint open",
			secret:     "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "matching bearer token passes",
			secret:     "s3cret",
			authHeader: "Bearer s3cret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header rejected",
			secret:     "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token rejected",
			secret:     "s3cret",
			authHeader: "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non bearer scheme rejected",
			secret:     "s3cret",
			authHeader: "Basic s3cret",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := cronTestRouter(tt.secret)

			req := httptest.NewRequest(http.MethodGet, "/cron", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
