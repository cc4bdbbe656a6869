package domain

import "net/url"

const (
	RouteLogin         = "/login"
	RouteDashboard     = "/dashboard"
	RouteAdminProducts = "/admin/products"

	categoryRoutePrefix = "/categories/"
)

// Navigation is a route change requested by a flow; the client performs it.
type Navigation struct {
	Path  string            `json:"path"`
	State map[string]string `json:"state,omitempty"`
}

// CategoryRoute is the category-scoped path carrying the name as navigation state.
func CategoryRoute(name string) Navigation {
	return Navigation{
		Path:  categoryRoutePrefix + url.PathEscape(name),
		State: map[string]string{"categoryName": name},
	}
}

// LandingRoute picks where a freshly authenticated session is sent.
func LandingRoute(s *Session) Navigation {
	if HasRole(s, RoleAdmin) {
		return Navigation{Path: RouteAdminProducts}
	}
	return Navigation{Path: RouteDashboard}
}
