package routeguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          string
		authenticated bool
		want          Decision
	}{
		{"protected without session", "/dashboard", false, RedirectSignIn},
		{"protected subpath without session", "/study/history", false, RedirectSignIn},
		{"protected with session", "/progress", true, Allow},
		{"root without session", "/", false, Allow},
		{"root with session", "/", true, Allow},
		{"sign-in without session", "/sign-in", false, Allow},
		{"sign-in with session", "/sign-in", true, RedirectDashboard},
		{"sign-up with session", "/sign-up", true, RedirectDashboard},
		{"every protected prefix", "/goals", false, RedirectSignIn},
		{"settings without session", "/settings", false, RedirectSignIn},
		{"unknown path without session", "/about", false, Allow},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Evaluate(tt.path, tt.authenticated))
		})
	}
}

// Lexical prefixes of protected routes must not be caught: matching is on
// whole path segments.
func TestEvaluate_SegmentMatching(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Allow, Evaluate("/dashboard-extra", false))
	assert.Equal(t, Allow, Evaluate("/studying", false))
	assert.Equal(t, RedirectSignIn, Evaluate("/dashboard/", false))
	assert.Equal(t, RedirectSignIn, Evaluate("/dashboard/sub/page", false))
}

func TestSignInURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/sign-in?redirect=%2Fdashboard", SignInURL("/dashboard"))
	assert.Equal(t, "/sign-in?redirect=%2Fstudy%2Fhistory", SignInURL("/study/history"))
}
