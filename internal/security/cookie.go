package security

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieMaxAge matches the token TTL: 7 days in seconds.
const CookieMaxAge = 7 * 24 * 60 * 60

// SetSessionCookie stores the session token as an HTTP-only, SameSite=Lax
// cookie scoped to the whole site. Secure is off only for local development.
func SetSessionCookie(c *gin.Context, name string, token string, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie deletes the session cookie. The token itself stays
// valid until its natural expiry; there is no server-side revocation.
func ClearSessionCookie(c *gin.Context, name string, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
