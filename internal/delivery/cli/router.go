package cli

import "gobarber-client/internal/domain"

// Route names which screen graph is mounted.
type Route int

const (
	RouteLoading Route = iota
	RouteAuth
	RouteApp
)

func (r Route) String() string {
	switch r {
	case RouteLoading:
		return "loading"
	case RouteAuth:
		return "auth"
	case RouteApp:
		return "app"
	}
	return "unknown"
}

// SelectRoute is a pure function of the published session state: the
// loading indicator until restoration resolves, then the authenticated or
// unauthenticated graph.
func SelectRoute(snapshot domain.SessionSnapshot) Route {
	if snapshot.State == domain.SessionLoading {
		return RouteLoading
	}
	if snapshot.User != nil {
		return RouteApp
	}
	return RouteAuth
}
