package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFilterContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/study-sessions"+query, nil)
	return c
}

func TestParseListFilter_Defaults(t *testing.T) {
	filter, err := parseListFilter(listFilterContext(t, ""))
	require.NoError(t, err)

	assert.Equal(t, defaultSessionListLimit, filter.Limit)
	assert.Nil(t, filter.From)
	assert.Nil(t, filter.To)
	assert.False(t, filter.Ascending)
}

func TestParseListFilter_FullQuery(t *testing.T) {
	filter, err := parseListFilter(listFilterContext(t,
		"?limit=10&from=2026-03-01T00:00:00Z&to=2026-03-10T00:00:00Z&order=asc"))
	require.NoError(t, err)

	assert.Equal(t, 10, filter.Limit)
	require.NotNil(t, filter.From)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), *filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), *filter.To)
	assert.True(t, filter.Ascending)
}

func TestParseListFilter_OrderValues(t *testing.T) {
	filter, err := parseListFilter(listFilterContext(t, "?order=desc"))
	require.NoError(t, err)
	assert.False(t, filter.Ascending)

	filter, err = parseListFilter(listFilterContext(t, "?order=asc"))
	require.NoError(t, err)
	assert.True(t, filter.Ascending)
}

func TestParseListFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad limit", "?limit=zero"},
		{"zero limit", "?limit=0"},
		{"bad from", "?from=yesterday"},
		{"bad to", "?to=2026-03-10"},
		{"bad order", "?order=sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseListFilter(listFilterContext(t, tt.query))
			assert.Error(t, err)
		})
	}
}
