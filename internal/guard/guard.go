// Package guard decides whether a page may be shown for the current session.
//
// Evaluation order is fixed: a session check still in flight always yields
// Pending, then authentication is checked, then the admin role. Guards read
// session state and never change it.
package guard

import (
	"net/url"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/session"
)

// access requirement of a page
type Policy int

const (
	Public Policy = iota
	RequireAuth
	RequireAdmin
)

// result of evaluating a policy
type Outcome int

const (
	Allow Outcome = iota
	Pending
	Redirect
	Deny
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// DefaultLoginPath is where anonymous visitors are sent.
const DefaultLoginPath = "/login"

// FromParam carries the originally requested location on the login redirect.
const FromParam = "from"

type Decision struct {
	Outcome Outcome
	// redirect target, set only for Redirect
	Location string
}

// evaluates policy against state for the requested location
func Evaluate(state session.State, policy Policy, requested, loginPath string) Decision {
	if policy == Public {
		return Decision{Outcome: Allow}
	}

	if state.Loading {
		return Decision{Outcome: Pending}
	}

	if !state.Authenticated || state.User == nil {
		return Decision{Outcome: Redirect, Location: LoginLocation(loginPath, requested)}
	}

	if policy == RequireAdmin && state.User.Role != apiclient.RoleAdmin {
		return Decision{Outcome: Deny}
	}

	return Decision{Outcome: Allow}
}

// builds the login location that returns to requested afterwards
func LoginLocation(loginPath, requested string) string {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}

	if requested == "" || requested == loginPath {
		return loginPath
	}

	return loginPath + "?" + url.Values{FromParam: {requested}}.Encode()
}

// extracts the return location from a login location. only in-app paths
// are honored.
func ReturnLocation(location, fallback string) string {
	u, err := url.Parse(location)
	if err != nil {
		return fallback
	}

	from := u.Query().Get(FromParam)
	if len(from) < 1 || from[0] != '/' || (len(from) > 1 && from[1] == '/') {
		return fallback
	}

	return from
}

// applies policies against a session store
type Guard struct {
	store     session.Reader
	loginPath string
}

// creates a guard reading from store
func New(store session.Reader, loginPath string) *Guard {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}

	return &Guard{store: store, loginPath: loginPath}
}

// returns the login path anonymous visitors are redirected to
func (g *Guard) LoginPath() string {
	return g.loginPath
}

// requires an authenticated session
func (g *Guard) Auth(requested string) Decision {
	return Evaluate(g.store.Snapshot(), RequireAuth, requested, g.loginPath)
}

// requires an authenticated admin session
func (g *Guard) Admin(requested string) Decision {
	return Evaluate(g.store.Snapshot(), RequireAdmin, requested, g.loginPath)
}

// evaluates any policy
func (g *Guard) Check(policy Policy, requested string) Decision {
	return Evaluate(g.store.Snapshot(), policy, requested, g.loginPath)
}
