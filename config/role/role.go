package role

import "strings"

type UserRole string

const Admin UserRole = "ADMIN"
const Store UserRole = "STORE"
const Finance UserRole = "FINANCE"
const HR UserRole = "HR"
const DataManager UserRole = "DATAMANAGER"

// landing paths for each role
const (
	AdminPath       = "/admin"
	StorePath       = "/store"
	FinancePath     = "/finance-manager/dashboard"
	HRPath          = "/hr"
	DataManagerPath = "/data-manager"
	DefaultPath     = "/dashboard"
)

// landingOrder decides the landing path of users with several roles; earlier entries win
var landingOrder = []struct {
	role UserRole
	path string
}{
	{Admin, AdminPath},
	{Store, StorePath},
	{Finance, FinancePath},
	{HR, HRPath},
	{DataManager, DataManagerPath},
}

// Parse converts a role name reported by the backend into a UserRole.
// Names are case-insensitive and may carry a "ROLE_" prefix.
func Parse(raw string) UserRole {
	name := strings.ToUpper(strings.TrimSpace(raw))
	return UserRole(strings.TrimPrefix(name, "ROLE_"))
}

// FromStrings parses every non-empty role name in raw
func FromStrings(raw []string) []UserRole {
	roles := make([]UserRole, 0, len(raw))
	for _, name := range raw {
		parsed := Parse(name)
		if len(parsed) == 0 {
			continue
		}
		roles = append(roles, parsed)
	}
	return roles
}

// Has checks whether roles contain r
func Has(roles []UserRole, r UserRole) bool {
	for _, candidate := range roles {
		if candidate == r {
			return true
		}
	}
	return false
}

// HasAny checks whether roles satisfy at least one of required.
// Admins satisfy every requirement and an empty requirement is always satisfied.
func HasAny(roles []UserRole, required ...UserRole) bool {
	if len(required) == 0 || Has(roles, Admin) {
		return true
	}
	for _, r := range required {
		if Has(roles, r) {
			return true
		}
	}
	return false
}

// LandingPath returns the page a user with the given roles is sent to after logging in
func LandingPath(roles []UserRole) string {
	for _, landing := range landingOrder {
		if Has(roles, landing.role) {
			return landing.path
		}
	}
	return DefaultPath
}
