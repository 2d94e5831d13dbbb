package domain

type RouteKind string

const (
	RoutePublic    RouteKind = "public"
	RouteProtected RouteKind = "protected"
	// RouteGuestOnly is public for anonymous users and bounces
	// authenticated ones to the dashboard.
	RouteGuestOnly RouteKind = "guest_only"
)

type Route struct {
	Path string
	Kind RouteKind
}

var (
	RouteHome      = Route{Path: "/", Kind: RoutePublic}
	RouteLogin     = Route{Path: "/login", Kind: RouteGuestOnly}
	RouteRegister  = Route{Path: "/register", Kind: RouteGuestOnly}
	RouteDashboard = Route{Path: "/dashboard", Kind: RouteProtected}
	RouteProfile   = Route{Path: "/profile", Kind: RouteProtected}
)

// LookupRoute resolves a known path; unknown paths are treated as public.
func LookupRoute(path string) Route {
	for _, route := range []Route{RouteHome, RouteLogin, RouteRegister, RouteDashboard, RouteProfile} {
		if route.Path == path {
			return route
		}
	}
	return Route{Path: path, Kind: RoutePublic}
}
