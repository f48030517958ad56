package permissions_test

import (
	"net/http"
	"pms/permissions"
	"pms/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)

	for _, endpoint := range data.Endpoints {
		assert.True(t, endpoint.Skip || len(endpoint.Permissions) > 0, "%s %s has no roles", endpoint.Method, endpoint.Path)
	}
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		found     bool
		skip      bool
		allowed   []string
		forbidden []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, found: true, skip: true},
		{
			name:      "group root with trailing slash",
			path:      "/v1/bookings/",
			method:    http.MethodPost,
			found:     true,
			allowed:   []string{constant.RoleFrontDesk, constant.RoleManager},
			forbidden: []string{constant.RoleHousekeeping},
		},
		{
			name:    "group root without trailing slash",
			path:    "/v1/bookings",
			method:  http.MethodGet,
			found:   true,
			allowed: []string{constant.RoleAdmin},
		},
		{
			name:      "housekeeping marks rooms clean",
			path:      "/v1/rooms/{id}/clean",
			method:    http.MethodPost,
			found:     true,
			allowed:   []string{constant.RoleHousekeeping},
			forbidden: []string{"guest"},
		},
		{name: "method mismatch", path: "/v1/audit-logs", method: http.MethodDelete},
		{name: "unknown route", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.found, permission.Path != "")
			assert.Equal(t, tt.skip, permission.Skip)

			for _, role := range tt.allowed {
				assert.True(t, permission.Allows(role), role)
			}

			for _, role := range tt.forbidden {
				assert.False(t, permission.Allows(role), role)
			}
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	assert.True(t, permissions.Permission{Skip: true, Permissions: []string{constant.RoleAdmin}}.Allows(""))
	assert.True(t, permissions.Permission{}.Allows(constant.RoleHousekeeping))
	assert.False(t, permissions.Permission{Permissions: []string{constant.RoleAdmin}}.Allows(constant.RoleManager))
}
