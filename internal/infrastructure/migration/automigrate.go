package migration

import (
	"keybuddy/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every model the schema is built from, in
// dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CustomerModel{},
		&models.KeySystemModel{},
		&models.OrderModel{},
		&models.KeyReceiptModel{},
		&models.ManufacturingOrderModel{},
		&models.InvoiceModel{},
		&models.PermissionModel{},
		&models.UserLogModel{},
		&models.KeyCatalogModel{},
		&models.KeyCatalog2Model{},
	}
}
