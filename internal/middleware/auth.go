package middleware

import (
	"strings"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards admin routes. The token is accepted from the
// Authorization header only; query parameters would leak it into access
// logs.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin", claims)
		c.Next()
	}
}
