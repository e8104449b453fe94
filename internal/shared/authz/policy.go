package authz

import "varsity/internal/users"

// Area is a top-level section of the application a request targets.
type Area string

const (
	AreaAdmin      Area = "admin"
	AreaFaculty    Area = "faculty"
	AreaStudent    Area = "student"
	AreaAudience   Area = "audience"
	AreaAnalytics  Area = "analytics"
	AreaEnrollment Area = "enrollment"
	AreaOrders     Area = "orders"
)

// Decision is the outcome of a policy check. When Allow is false,
// RedirectTo names the area home the caller should be sent to instead.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// home path per role, mirroring the per-layout redirect rules the app
// previously scattered across each area's entry point
var roleHome = map[users.Role]string{
	users.RoleAdmin:    "/admin",
	users.RoleFaculty:  "/faculty",
	users.RoleStudent:  "/",
	users.RoleAudience: "/",
}

// allowed maps each area to the roles permitted in it.
var allowed = map[Area][]users.Role{
	AreaAdmin:      {users.RoleAdmin},
	AreaFaculty:    {users.RoleFaculty},
	AreaStudent:    {users.RoleStudent},
	AreaAudience:   {users.RoleAudience},
	AreaAnalytics:  {users.RoleAdmin},
	AreaEnrollment: {users.RoleStudent},
	AreaOrders:     {users.RoleAudience, users.RoleAdmin},
}

// Check maps (role, area) to an allow/redirect decision. All role gating in
// the router goes through this single table.
func Check(role users.Role, area Area) Decision {
	for _, r := range allowed[area] {
		if r == role {
			return Decision{Allow: true}
		}
	}

	home, ok := roleHome[role]
	if !ok {
		home = "/"
	}
	return Decision{Allow: false, RedirectTo: home}
}

// Home returns the landing path for a role.
func Home(role users.Role) string {
	if home, ok := roleHome[role]; ok {
		return home
	}
	return "/"
}
