package guard

import "github.com/madil51/chunk-client/internal/client/models"

// ProtectedRoutes is the access-control table for the application's
// protected areas, mirroring the route metadata the backend contract
// assumes. Public routes (home, auth) carry no metadata and bypass the
// guard entirely.
var ProtectedRoutes = []Route{
	{Path: "/customer/dashboard", Roles: []models.Role{models.RoleCustomer}},
	{Path: "/driver/dashboard", Roles: []models.Role{models.RoleDriver}},
	{Path: "/admin/dashboard", Roles: []models.Role{models.RoleAdmin, models.RoleSuperAdmin}},
}

// Lookup returns the route metadata for path. The second result is false
// for unprotected paths.
func Lookup(path string) (Route, bool) {
	for _, r := range ProtectedRoutes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
