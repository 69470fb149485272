package tui

import (
	"net/url"
	"strings"

	"codeberg.org/foodmap/client/internal/guard"
)

func routeTable() []route {
	return []route{
		{pattern: "/", policy: guard.Public, build: newHomePage},
		{pattern: "/list", policy: guard.Public, build: newListPage},
		{pattern: "/popular", policy: guard.Public, build: newPopularPage},
		{pattern: "/restaurant/:id", policy: guard.Public, build: newDetailPage},
		{pattern: "/login", policy: guard.Public, build: newLoginPage},
		{pattern: "/register", policy: guard.Public, build: newRegisterPage},
		{pattern: "/dashboard", policy: guard.RequireAuth, build: newDashboardPage},
		{pattern: "/submit", policy: guard.RequireAuth, build: newSubmitPage},
		{pattern: "/admin", policy: guard.RequireAdmin, build: newAdminPage},
		{pattern: "/submissions", policy: guard.RequireAdmin, build: newSubmissionsPage},
	}
}

var notFoundRoute = route{pattern: "*", policy: guard.Public, build: newNotFoundPage}

// splits a location into its path and query
func splitLocation(location string) (string, url.Values) {
	u, err := url.Parse(location)
	if err != nil || u.Path == "" {
		return "/", url.Values{}
	}

	path := u.Path
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return path, u.Query()
}

// finds the route for path, falling back to the not-found page
func matchRoute(routes []route, path string) (route, map[string]string) {
	for _, r := range routes {
		if params, ok := matchPattern(r.pattern, path); ok {
			return r, params
		}
	}
	return notFoundRoute, map[string]string{}
}

func matchPattern(pattern, path string) (map[string]string, bool) {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return nil, false
	}

	params := map[string]string{}
	for i, seg := range want {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if got[i] == "" {
				return nil, false
			}
			v, err := url.PathUnescape(got[i])
			if err != nil {
				return nil, false
			}
			params[name] = v
			continue
		}
		if seg != got[i] {
			return nil, false
		}
	}

	return params, true
}
