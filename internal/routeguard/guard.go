// Package routeguard classifies request paths against the fixed sets of
// protected and auth-only routes and decides, per request, whether to let
// the request through or redirect it.
package routeguard

import (
	"net/url"
	"strings"
)

type Decision int

const (
	// Allow lets the request proceed unchanged.
	Allow Decision = iota
	// RedirectSignIn sends the request to the sign-in page, preserving the
	// intended destination.
	RedirectSignIn
	// RedirectDashboard sends already-authenticated requests away from the
	// sign-in/sign-up pages.
	RedirectDashboard
)

const (
	SignInPath    = "/sign-in"
	DashboardPath = "/dashboard"
)

// Fixed configuration, not computed.
var protectedRoutes = []string{
	"/dashboard",
	"/study",
	"/progress",
	"/goals",
	"/resources",
	"/tasks",
	"/skills",
	"/exams",
	"/settings",
}

var authRoutes = []string{
	"/sign-in",
	"/sign-up",
}

// Evaluate is a pure decision over (path, token validity). A
// present-but-invalid token must be reported by the caller as
// authenticated=false.
func Evaluate(path string, authenticated bool) Decision {
	if matchesAny(path, protectedRoutes) && !authenticated {
		return RedirectSignIn
	}
	if matchesAny(path, authRoutes) && authenticated {
		return RedirectDashboard
	}
	return Allow
}

// SignInURL builds the sign-in redirect target with the intended
// destination carried in the redirect query parameter.
func SignInURL(destination string) string {
	return SignInPath + "?redirect=" + url.QueryEscape(destination)
}

// matchesRoute compares on whole path segments: /dashboard matches
// /dashboard and /dashboard/stats but not /dashboard-extra.
func matchesRoute(path string, route string) bool {
	return path == route || strings.HasPrefix(path, route+"/")
}

func matchesAny(path string, routes []string) bool {
	for _, route := range routes {
		if matchesRoute(path, route) {
			return true
		}
	}
	return false
}
