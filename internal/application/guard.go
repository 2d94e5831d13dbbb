package application

import "github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"

// Navigator receives redirects decided outside a route transition, such as
// an expired session.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

type Decision struct {
	Allowed    bool
	RedirectTo string
	// ReturnTo is the originally requested path, kept so login can send
	// the user back.
	ReturnTo string
}

type RouteGuard struct{}

func (RouteGuard) CanAccess(session domain.Session, route domain.Route) Decision {
	switch route.Kind {
	case domain.RouteProtected:
		if session.Authenticated() {
			return Decision{Allowed: true}
		}
		return Decision{RedirectTo: domain.RouteLogin.Path, ReturnTo: route.Path}
	case domain.RouteGuestOnly:
		if session.Authenticated() {
			return Decision{RedirectTo: domain.RouteDashboard.Path}
		}
		return Decision{Allowed: true}
	default:
		return Decision{Allowed: true}
	}
}

// AfterLogin picks the post-login destination.
func (RouteGuard) AfterLogin(returnTo string) string {
	if returnTo == "" || domain.LookupRoute(returnTo).Kind == domain.RouteGuestOnly {
		return domain.RouteDashboard.Path
	}
	return returnTo
}
