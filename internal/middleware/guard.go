package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studytrack/api/internal/config"
	"studytrack/api/internal/routeguard"
	"studytrack/api/internal/security"
)

// Guard applies the route access policy to every page request before any
// handler runs. API and health endpoints carry their own auth and are
// skipped, matching the original matcher which excluded them.
func Guard(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/healthz" {
			c.Next()
			return
		}

		authenticated := false
		if token, err := c.Cookie(cfg.Security.CookieName); err == nil && token != "" {
			// An invalid token counts the same as no token at all.
			if _, err := security.ParseSessionToken(token, cfg.Security.AuthSecret); err == nil {
				authenticated = true
			}
		}

		switch routeguard.Evaluate(path, authenticated) {
		case routeguard.RedirectSignIn:
			c.Redirect(http.StatusFound, routeguard.SignInURL(path))
			c.Abort()
		case routeguard.RedirectDashboard:
			c.Redirect(http.StatusFound, routeguard.DashboardPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
