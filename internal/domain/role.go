package domain

import "strings"

// Role — роль сотрудника в организации.
type Role string

const (
	RoleOwner       Role = "OWNER"
	RoleAdmin       Role = "ADMIN"
	RoleInspector   Role = "INSPECTOR"
	RoleOfficeStaff Role = "OFFICE_STAFF"
)

// ParseRole нормализует роль из внешнего источника (токен, заголовок).
// Неизвестная роль возвращается как есть и не получает никаких прав.
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

// Permission идентифицирует отдельное право.
type Permission string

const (
	PermViewBilling    Permission = "view_billing"
	PermManageBilling  Permission = "manage_billing"
	PermViewInvoices   Permission = "view_invoices"
	PermCreateInvoices Permission = "create_invoices"
	PermViewSettings   Permission = "view_settings"
	PermEditSettings   Permission = "edit_settings"
	PermViewTemplates  Permission = "view_templates"
	PermViewTeam       Permission = "view_team"
)

// ManageCatalogPermission даёт доступ к созданию и архивации услуг.
const ManageCatalogPermission = PermManageBilling

// rolePermissions — права ролей по умолчанию.
var rolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermViewBilling, PermManageBilling, PermViewInvoices, PermCreateInvoices,
		PermViewSettings, PermEditSettings, PermViewTemplates, PermViewTeam,
	},
	RoleAdmin: {
		PermViewBilling, PermViewInvoices, PermCreateInvoices,
		PermViewSettings, PermEditSettings, PermViewTemplates, PermViewTeam,
	},
	RoleInspector: {
		PermViewTemplates, PermViewTeam,
	},
	RoleOfficeStaff: {
		PermViewInvoices, PermCreateInvoices, PermViewTemplates, PermViewTeam,
	},
}

// PermissionsForRole возвращает права роли; для неизвестной роли — nil.
func PermissionsForRole(role Role) []Permission {
	return rolePermissions[role]
}

// Can сообщает, есть ли у роли право perm.
func Can(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}

	return false
}

// CanManageCatalog сообщает, может ли роль создавать и архивировать услуги.
func CanManageCatalog(role Role) bool {
	return Can(role, ManageCatalogPermission)
}
