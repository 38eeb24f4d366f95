package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/model"
	"talentscout_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"

	admin := &model.AdminUser{Username: "admin"}
	admin.ID = 1
	token, err := util.GenerateJWT(admin, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/guarded", AuthMiddleware(cfg), func(c *gin.Context) {
		claims := util.GetAdminFromContext(c)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return router, token
}

func TestAuthMiddlewareAcceptsBearerHeader(t *testing.T) {
	router, token := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Tokens are never read from the URL, so they cannot leak into access logs.
func TestAuthMiddlewareIgnoresQueryToken(t *testing.T) {
	router, token := newAuthRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/guarded?token="+token, nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
