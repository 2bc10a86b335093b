package resources

import "github.com/unicsmcr/bizdash/config/role"

// Module is a group of resources sharing a landing page and a role
type Module struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
	// Role required to open the module page; empty means any logged in user
	Role role.UserRole `json:"-"`
}

const (
	DataManagerModule = "data-manager"
	FinanceModule     = "finance-manager"
	HRModule          = "hr"
	StoreModule       = "store"
	EmployeeModule    = "employee"
)

// Modules lists the modules in display order
var Modules = []Module{
	{Name: DataManagerModule, Title: "Data Manager", Path: role.DataManagerPath, Role: role.DataManager},
	{Name: FinanceModule, Title: "Finance", Path: role.FinancePath, Role: role.Finance},
	{Name: HRModule, Title: "Human Resources", Path: role.HRPath, Role: role.HR},
	{Name: StoreModule, Title: "Store", Path: role.StorePath, Role: role.Store},
	{Name: EmployeeModule, Title: "My Dashboard", Path: role.DefaultPath},
}

// ModuleByName returns the module with the given name
func ModuleByName(name string) (Module, bool) {
	for _, module := range Modules {
		if module.Name == name {
			return module, true
		}
	}
	return Module{}, false
}

// AllowedFor checks whether a user with the given roles may open the module page
func (m Module) AllowedFor(roles []role.UserRole) bool {
	if len(m.Role) == 0 {
		return true
	}
	return role.HasAny(roles, m.Role)
}
