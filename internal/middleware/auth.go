package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrack/api/internal/config"
	"studytrack/api/internal/models"
	"studytrack/api/internal/security"
)

const (
	ContextClaims = "session_claims"
	ContextUser   = "current_user"
)

// UserGetter resolves token claims back to a stored user.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// Auth protects API routes with the session cookie. Any verification
// failure resolves to a single 401; the reason is never surfaced.
func Auth(cfg *config.AppConfig, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Security.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		claims, err := security.ParseSessionToken(token, cfg.Security.AuthSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		c.Set(ContextClaims, *claims)
		c.Set(ContextUser, user)

		c.Next()
	}
}
