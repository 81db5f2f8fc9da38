package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := IssueSessionToken("top-secret", "user-123", "ada@example.com", 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "top-secret")
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := IssueSessionToken("top-secret", "user-123", "ada@example.com", -time.Minute)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "top-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := IssueSessionToken("right-secret", "user-123", "ada@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "wrong-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		claims, err := ParseSessionToken(token, "top-secret")
		assert.Error(t, err)
		assert.Nil(t, claims)
	}
}
