package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
)

func TestRouteGuardCanAccess(t *testing.T) {
	t.Parallel()

	signedIn := domain.Session{Identity: &domain.Identity{ID: "1", Username: "ana"}, Token: "jwt", Status: domain.StatusAuthenticated}
	anonymous := domain.Session{Status: domain.StatusUnauthenticated}
	restoring := domain.Session{Status: domain.StatusRestoring}

	tests := []struct {
		name    string
		session domain.Session
		route   domain.Route
		want    Decision
	}{
		{name: "public anonymous", session: anonymous, route: domain.RouteHome, want: Decision{Allowed: true}},
		{name: "protected signed in", session: signedIn, route: domain.RouteDashboard, want: Decision{Allowed: true}},
		{name: "protected anonymous", session: anonymous, route: domain.RouteProfile, want: Decision{RedirectTo: "/login", ReturnTo: "/profile"}},
		{name: "protected while restoring", session: restoring, route: domain.RouteDashboard, want: Decision{RedirectTo: "/login", ReturnTo: "/dashboard"}},
		{name: "guest only anonymous", session: anonymous, route: domain.RouteLogin, want: Decision{Allowed: true}},
		{name: "guest only signed in", session: signedIn, route: domain.RouteRegister, want: Decision{RedirectTo: "/dashboard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteGuard{}.CanAccess(tt.session, tt.route))
		})
	}
}

func TestRouteGuardAfterLogin(t *testing.T) {
	t.Parallel()

	guard := RouteGuard{}
	assert.Equal(t, "/profile", guard.AfterLogin("/profile"))
	assert.Equal(t, "/dashboard", guard.AfterLogin(""))
	assert.Equal(t, "/dashboard", guard.AfterLogin("/login"))
}
