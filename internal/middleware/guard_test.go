package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/api/internal/config"
	"studytrack/api/internal/security"
)

const guardTestSecret = "guard-test-secret"

func guardTestConfig() *config.AppConfig {
	return &config.AppConfig{
		Environment: "development",
		Security: config.SecurityConfig{
			AuthSecret: guardTestSecret,
			TokenTTL:   7 * 24 * time.Hour,
			CookieName: "auth-token",
		},
	}
}

func newGuardedEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Guard(guardTestConfig()))
	engine.NoRoute(func(c *gin.Context) {
		c.String(http.StatusOK, "page")
	})
	return engine
}

func doGuardedRequest(t *testing.T, path string, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "auth-token", Value: token})
	}
	rec := httptest.NewRecorder()
	newGuardedEngine(t).ServeHTTP(rec, req)
	return rec
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := security.IssueSessionToken(guardTestSecret, "user-1", "ada@example.com", time.Hour)
	require.NoError(t, err)
	return token
}

func TestGuard_ProtectedWithoutToken(t *testing.T) {
	rec := doGuardedRequest(t, "/dashboard", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/sign-in?redirect=%2Fdashboard", rec.Header().Get("Location"))
}

func TestGuard_ProtectedWithValidToken(t *testing.T) {
	rec := doGuardedRequest(t, "/progress", validToken(t))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page", rec.Body.String())
}

func TestGuard_AuthRouteWithValidToken(t *testing.T) {
	rec := doGuardedRequest(t, "/sign-in", validToken(t))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestGuard_RootAllowed(t *testing.T) {
	rec := doGuardedRequest(t, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

// A present-but-invalid token is treated exactly like no token.
func TestGuard_InvalidTokenVariants(t *testing.T) {
	expired, err := security.IssueSessionToken(guardTestSecret, "user-1", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	foreign, err := security.IssueSessionToken("some-other-secret", "user-1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"garbage", expired, foreign} {
		rec := doGuardedRequest(t, "/dashboard", token)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/sign-in?redirect=%2Fdashboard", rec.Header().Get("Location"))
	}
}

func TestGuard_SkipsAPIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Guard(guardTestConfig()))
	engine.GET("/api/v1/stats/summary", func(c *gin.Context) {
		c.String(http.StatusOK, "api")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/summary", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	// No redirect: API routes answer with their own status codes.
	assert.Equal(t, http.StatusOK, rec.Code)
}
