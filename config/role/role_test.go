package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse__should_normalise_role_names(t *testing.T) {
	tests := []struct {
		raw  string
		want UserRole
	}{
		{raw: "ADMIN", want: Admin},
		{raw: "admin", want: Admin},
		{raw: " Finance ", want: Finance},
		{raw: "ROLE_STORE", want: Store},
		{raw: "role_datamanager", want: DataManager},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func Test_FromStrings__should_skip_empty_names(t *testing.T) {
	assert.Equal(t, []UserRole{HR, Store}, FromStrings([]string{"hr", " ", "ROLE_STORE"}))
	assert.Empty(t, FromStrings(nil))
}

func Test_HasAny(t *testing.T) {
	tests := []struct {
		name     string
		roles    []UserRole
		required []UserRole
		want     bool
	}{
		{
			name: "should return true when nothing is required",
			want: true,
		},
		{
			name:     "should return true for admin regardless of requirement",
			roles:    []UserRole{Admin},
			required: []UserRole{Store},
			want:     true,
		},
		{
			name:     "should return true when one required role is present",
			roles:    []UserRole{HR},
			required: []UserRole{Finance, HR},
			want:     true,
		},
		{
			name:     "should return false when no required role is present",
			roles:    []UserRole{HR},
			required: []UserRole{Finance},
			want:     false,
		},
		{
			name:     "should return false for user without roles",
			required: []UserRole{Finance},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAny(tt.roles, tt.required...))
		})
	}
}

func Test_LandingPath__should_return_path_for_each_role(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{name: "admin", roles: []string{"ADMIN"}, want: "/admin"},
		{name: "store", roles: []string{"STORE"}, want: "/store"},
		{name: "finance", roles: []string{"FINANCE"}, want: "/finance-manager/dashboard"},
		{name: "hr", roles: []string{"HR"}, want: "/hr"},
		{name: "data manager", roles: []string{"DATAMANAGER"}, want: "/data-manager"},
		{name: "unknown role", roles: []string{"EMPLOYEE"}, want: "/dashboard"},
		{name: "no roles", roles: nil, want: "/dashboard"},
		{name: "admin wins over other roles", roles: []string{"HR", "ADMIN"}, want: "/admin"},
		{name: "store wins over finance", roles: []string{"FINANCE", "STORE"}, want: "/store"},
		{name: "prefixed lowercase role", roles: []string{"role_hr"}, want: "/hr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LandingPath(FromStrings(tt.roles)))
		})
	}
}
