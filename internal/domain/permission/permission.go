// Package permission defines the role and grant based access model.
// A user's effective permissions are the union of their role's
// defaults and any individually granted extras.
package permission

import "fmt"

// Permission identifies a single guarded operation.
type Permission string

const (
	// Customer management
	CreateCustomer Permission = "create_customer"
	EditCustomer   Permission = "edit_customer"
	DeleteCustomer Permission = "delete_customer"
	ViewCustomer   Permission = "view_customer"

	// Key system management
	CreateKeySystem Permission = "create_key_system"
	EditKeySystem   Permission = "edit_key_system"
	DeleteKeySystem Permission = "delete_key_system"
	ViewKeySystem   Permission = "view_key_system"

	// Order management
	CreateOrder Permission = "create_order"
	EditOrder   Permission = "edit_order"
	DeleteOrder Permission = "delete_order"
	ViewOrder   Permission = "view_order"
	ExportOrder Permission = "export_order"
	PrintOrder  Permission = "print_order"

	// User administration
	CreateUser        Permission = "create_user"
	EditUser          Permission = "edit_user"
	DeleteUser        Permission = "delete_user"
	ViewUser          Permission = "view_user"
	ManagePermissions Permission = "manage_permissions"

	// System administration
	ManageSettings  Permission = "manage_settings"
	BackupDatabase  Permission = "backup_database"
	RestoreDatabase Permission = "restore_database"
)

// All lists every defined permission.
func All() []Permission {
	return []Permission{
		CreateCustomer, EditCustomer, DeleteCustomer, ViewCustomer,
		CreateKeySystem, EditKeySystem, DeleteKeySystem, ViewKeySystem,
		CreateOrder, EditOrder, DeleteOrder, ViewOrder,
		ExportOrder, PrintOrder,
		CreateUser, EditUser, DeleteUser, ViewUser,
		ManagePermissions,
		ManageSettings, BackupDatabase, RestoreDatabase,
	}
}

// Parse validates a permission string.
func Parse(s string) (Permission, error) {
	p := Permission(s)
	for _, known := range All() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown permission: %s", s)
}

func (p Permission) String() string {
	return string(p)
}
