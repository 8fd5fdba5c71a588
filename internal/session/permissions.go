package session

import "github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"

// App sections a role can be allowed into. These match the SPA's
// navigation identifiers.
const (
	SectionDashboard = "dashboard"
	SectionCustomers = "customers"
	SectionRepairs   = "repairs"
	SectionPOS       = "pos"
	SectionInventory = "inventory"
	SectionPurchases = "purchases"
	SectionFinance   = "finance"
	SectionEmployees = "employees"
	SectionPayroll   = "payroll"
	SectionSettings  = "settings"
)

// rolePermissions is the static allow-list per role. Admin is not
// listed: it implicitly permits every section.
var rolePermissions = map[string][]string{
	models.RoleSeller: {
		SectionDashboard,
		SectionCustomers,
		SectionRepairs,
		SectionPOS,
		SectionInventory,
	},
	models.RoleCashier: {
		SectionDashboard,
		SectionPOS,
		SectionFinance,
	},
}

// IsPermitted reports whether a role may open a section. Pure table
// lookup, no state.
func IsPermitted(role, section string) bool {
	if role == models.RoleAdmin {
		return true
	}
	for _, s := range rolePermissions[role] {
		if s == section {
			return true
		}
	}
	return false
}

// Sections lists what a role is allowed to see, for the SPA's menu.
func Sections(role string) []string {
	if role == models.RoleAdmin {
		return []string{
			SectionDashboard, SectionCustomers, SectionRepairs,
			SectionPOS, SectionInventory, SectionPurchases,
			SectionFinance, SectionEmployees, SectionPayroll,
			SectionSettings,
		}
	}
	return rolePermissions[role]
}
