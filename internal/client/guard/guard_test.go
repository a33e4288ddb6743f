package guard

import (
	"testing"

	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithRole(role models.Role) *models.User {
	return &models.User{ID: "u1", Email: "a@b.com", Name: "Alice", Role: role}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		user         *models.User
		route        Route
		wantAllow    bool
		wantRedirect string
	}{
		{
			name:         "unauthenticated denied to login",
			user:         nil,
			route:        Route{Path: "/customer/dashboard", Roles: []models.Role{models.RoleCustomer}},
			wantRedirect: LoginRoute,
		},
		{
			name:         "unauthenticated denied even without role metadata",
			user:         nil,
			route:        Route{Path: "/anything"},
			wantRedirect: LoginRoute,
		},
		{
			name:      "empty role set admits any authenticated role",
			user:      userWithRole(models.RoleDriver),
			route:     Route{Path: "/profile"},
			wantAllow: true,
		},
		{
			name:      "matching role admitted",
			user:      userWithRole(models.RoleCustomer),
			route:     Route{Path: "/customer/dashboard", Roles: []models.Role{models.RoleCustomer}},
			wantAllow: true,
		},
		{
			name:      "one of several roles admitted",
			user:      userWithRole(models.RoleSuperAdmin),
			route:     Route{Path: "/admin/dashboard", Roles: []models.Role{models.RoleAdmin, models.RoleSuperAdmin}},
			wantAllow: true,
		},
		{
			// Redirect follows the user's own role, never the required one.
			name:         "customer denied driver route lands on customer home",
			user:         userWithRole(models.RoleCustomer),
			route:        Route{Path: "/driver/dashboard", Roles: []models.Role{models.RoleDriver}},
			wantRedirect: "/customer/dashboard",
		},
		{
			name:         "driver denied admin route lands on driver home",
			user:         userWithRole(models.RoleDriver),
			route:        Route{Path: "/admin/dashboard", Roles: []models.Role{models.RoleAdmin}},
			wantRedirect: "/driver/dashboard",
		},
		{
			name:         "admin denied customer route lands on admin home",
			user:         userWithRole(models.RoleAdmin),
			route:        Route{Path: "/customer/dashboard", Roles: []models.Role{models.RoleCustomer}},
			wantRedirect: "/admin/dashboard",
		},
		{
			name:         "unknown role lands on generic home",
			user:         userWithRole("intern"),
			route:        Route{Path: "/customer/dashboard", Roles: []models.Role{models.RoleCustomer}},
			wantRedirect: "/home",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.user, tc.route)
			assert.Equal(t, tc.wantAllow, d.Allow)
			if tc.wantAllow {
				assert.Empty(t, d.Redirect)
				assert.Empty(t, d.Message)
			} else {
				assert.Equal(t, tc.wantRedirect, d.Redirect)
				assert.NotEmpty(t, d.Message)
			}
		})
	}
}

func TestHomeRouteFor(t *testing.T) {
	tests := []struct {
		role models.Role
		want string
	}{
		{models.RoleCustomer, "/customer/dashboard"},
		{models.RoleDriver, "/driver/dashboard"},
		{models.RoleAdmin, "/admin/dashboard"},
		{models.RoleSuperAdmin, "/admin/dashboard"},
		{"", "/home"},
		{"unknown", "/home"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HomeRouteFor(tc.role), "role %q", tc.role)
	}
}

// ---- side-effect wiring ----

type fakeSessions struct{ user *models.User }

func (f *fakeSessions) Current() *models.User { return f.user }

type fakeNav struct{ paths []string }

func (f *fakeNav) NavigateTo(path string) { f.paths = append(f.paths, path) }

type fakeNotifier struct{ messages []string }

func (f *fakeNotifier) Notify(m string) { f.messages = append(f.messages, m) }

func TestGuard_CanActivate_AllowsSilently(t *testing.T) {
	nav := &fakeNav{}
	notify := &fakeNotifier{}
	g := New(&fakeSessions{user: userWithRole(models.RoleDriver)}, nav, notify)

	ok := g.CanActivate(Route{Path: "/driver/dashboard", Roles: []models.Role{models.RoleDriver}})

	require.True(t, ok)
	assert.Empty(t, nav.paths)
	assert.Empty(t, notify.messages)
}

func TestGuard_CanActivate_DeniesWithNoticeAndRedirect(t *testing.T) {
	nav := &fakeNav{}
	notify := &fakeNotifier{}
	g := New(&fakeSessions{user: userWithRole(models.RoleCustomer)}, nav, notify)

	ok := g.CanActivate(Route{Path: "/driver/dashboard", Roles: []models.Role{models.RoleDriver}})

	require.False(t, ok)
	assert.Equal(t, []string{"/customer/dashboard"}, nav.paths)
	require.Len(t, notify.messages, 1)
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("/driver/dashboard")
	require.True(t, ok)
	assert.Equal(t, []models.Role{models.RoleDriver}, r.Roles)

	_, ok = Lookup("/home")
	assert.False(t, ok)
}
