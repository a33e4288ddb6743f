// Package guard gates navigation: an authentication check followed by a
// role check, evaluated against the in-memory session with no network call.
package guard

import (
	"fmt"

	"github.com/madil51/chunk-client/internal/client/models"
)

// Route is the access-control metadata a protected route declares. An empty
// Roles set means any authenticated identity may enter.
type Route struct {
	Path  string
	Roles []models.Role
}

// Decision is the outcome of evaluating a navigation attempt. When Allow is
// false, Redirect names where the user should land and Message is the
// user-visible denial notice.
type Decision struct {
	Allow    bool
	Redirect string
	Message  string
}

// Sessions is the read access the guard needs to the session store.
type Sessions interface {
	Current() *models.User
}

// Navigator moves the UI to a route. The CLI shell implements it.
type Navigator interface {
	NavigateTo(path string)
}

// Notifier surfaces a transient, user-visible message.
type Notifier interface {
	Notify(message string)
}

// LoginRoute is the unauthenticated entry point.
const LoginRoute = "/auth/login"

// HomeRouteFor maps a role to its home route. It is the single place this
// mapping lives; the login flow and the guard both use it.
func HomeRouteFor(role models.Role) string {
	switch role {
	case models.RoleCustomer:
		return "/customer/dashboard"
	case models.RoleDriver:
		return "/driver/dashboard"
	case models.RoleAdmin, models.RoleSuperAdmin:
		return "/admin/dashboard"
	default:
		return "/home"
	}
}

// Decide evaluates (identity, route metadata) and nothing else. It never
// errors: a denial carries the redirect target and message instead.
func Decide(user *models.User, route Route) Decision {
	if user == nil {
		return Decision{
			Redirect: LoginRoute,
			Message:  "Please login to access this page",
		}
	}

	if len(route.Roles) == 0 {
		return Decision{Allow: true}
	}
	for _, role := range route.Roles {
		if user.Role == role {
			return Decision{Allow: true}
		}
	}

	// Denied on role: send the user to their own home, not the route's.
	return Decision{
		Redirect: HomeRouteFor(user.Role),
		Message:  fmt.Sprintf("You do not have permission to access %s", route.Path),
	}
}

// Guard wires Decide to the session store and the navigation layer.
type Guard struct {
	sessions Sessions
	nav      Navigator
	notify   Notifier
}

func New(sessions Sessions, nav Navigator, notify Notifier) *Guard {
	return &Guard{sessions: sessions, nav: nav, notify: notify}
}

// CanActivate reports whether the current identity may enter route. On
// denial it emits the notice and performs the redirect before returning.
func (g *Guard) CanActivate(route Route) bool {
	decision := Decide(g.sessions.Current(), route)
	if !decision.Allow {
		g.notify.Notify(decision.Message)
		g.nav.NavigateTo(decision.Redirect)
	}
	return decision.Allow
}
