package permission

import "keybuddy/internal/shared/authorization"

// roleDefaults maps every role to its fixed baseline permission set.
// Roles act as a floor: revoking an individual grant never removes a
// permission the role itself provides.
var roleDefaults = map[authorization.UserRole][]Permission{
	authorization.RoleAdmin: {
		CreateCustomer, EditCustomer, DeleteCustomer, ViewCustomer,
		CreateKeySystem, EditKeySystem, DeleteKeySystem, ViewKeySystem,
		CreateOrder, EditOrder, DeleteOrder, ViewOrder,
		ExportOrder, PrintOrder,
		CreateUser, EditUser, DeleteUser, ViewUser,
		ManagePermissions, ManageSettings,
		BackupDatabase, RestoreDatabase,
	},
	authorization.RoleManager: {
		CreateCustomer, EditCustomer, ViewCustomer,
		CreateKeySystem, EditKeySystem, ViewKeySystem,
		CreateOrder, EditOrder, ViewOrder,
		ExportOrder, PrintOrder,
		ViewUser, BackupDatabase,
	},
	authorization.RoleUser: {
		ViewCustomer, ViewKeySystem,
		CreateOrder, ViewOrder,
		ExportOrder, PrintOrder,
	},
	authorization.RoleViewer: {
		ViewCustomer, ViewKeySystem, ViewOrder,
	},
}

// RoleDefaults returns the baseline permissions for a role.
func RoleDefaults(role authorization.UserRole) []Permission {
	defaults := roleDefaults[role]
	out := make([]Permission, len(defaults))
	copy(out, defaults)
	return out
}

// RoleHasPermission reports whether the role's baseline includes perm.
func RoleHasPermission(role authorization.UserRole, perm Permission) bool {
	for _, p := range roleDefaults[role] {
		if p == perm {
			return true
		}
	}
	return false
}
