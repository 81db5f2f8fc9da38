package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/api/internal/models"
	"studytrack/api/internal/repository"
	"studytrack/api/internal/security"
)

type fakeUserGetter struct {
	users map[string]models.User
}

func (f *fakeUserGetter) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func newAuthEngine(users UserGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/api/v1/auth/me", Auth(guardTestConfig(), users), func(c *gin.Context) {
		user := c.MustGet(ContextUser).(models.User)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return engine
}

func TestAuth_ValidCookie(t *testing.T) {
	users := &fakeUserGetter{users: map[string]models.User{
		"user-1": {ID: "user-1", Email: "ada@example.com"},
	}}

	token, err := security.IssueSessionToken(guardTestSecret, "user-1", "ada@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: token})
	rec := httptest.NewRecorder()
	newAuthEngine(users).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ada@example.com", body["email"])
}

func TestAuth_Unauthenticated(t *testing.T) {
	users := &fakeUserGetter{users: map[string]models.User{
		"user-1": {ID: "user-1", Email: "ada@example.com"},
	}}

	expired, err := security.IssueSessionToken(guardTestSecret, "user-1", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	deletedUser, err := security.IssueSessionToken(guardTestSecret, "user-gone", "gone@example.com", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"no cookie", ""},
		{"malformed token", "garbage"},
		{"expired token", expired},
		{"token for deleted user", deletedUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: "auth-token", Value: tt.token})
			}
			rec := httptest.NewRecorder()
			newAuthEngine(users).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"not_authenticated"}`, rec.Body.String())
		})
	}
}
