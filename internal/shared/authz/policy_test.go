package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"varsity/internal/users"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		role       users.Role
		area       Area
		allow      bool
		redirectTo string
	}{
		{"admin in admin area", users.RoleAdmin, AreaAdmin, true, ""},
		{"faculty in faculty area", users.RoleFaculty, AreaFaculty, true, ""},
		{"student in enrollment area", users.RoleStudent, AreaEnrollment, true, ""},
		{"audience in orders area", users.RoleAudience, AreaOrders, true, ""},
		{"admin in orders area", users.RoleAdmin, AreaOrders, true, ""},
		{"student redirected from admin area", users.RoleStudent, AreaAdmin, false, "/"},
		{"faculty redirected from admin area", users.RoleFaculty, AreaAdmin, false, "/faculty"},
		{"admin redirected from student area", users.RoleAdmin, AreaStudent, false, "/admin"},
		{"audience redirected from enrollment area", users.RoleAudience, AreaEnrollment, false, "/"},
		{"unknown role falls back to root", users.Role("GUEST"), AreaAdmin, false, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Check(tt.role, tt.area)
			assert.Equal(t, tt.allow, d.Allow)
			if !tt.allow {
				assert.Equal(t, tt.redirectTo, d.RedirectTo)
			}
		})
	}
}

func TestHome(t *testing.T) {
	assert.Equal(t, "/admin", Home(users.RoleAdmin))
	assert.Equal(t, "/faculty", Home(users.RoleFaculty))
	assert.Equal(t, "/", Home(users.RoleStudent))
	assert.Equal(t, "/", Home(users.Role("GUEST")))
}
