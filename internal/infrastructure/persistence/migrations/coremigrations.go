package migrations

import (
	"keybuddy/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// MigrateCoreTables creates or updates all application tables
func MigrateCoreTables(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}
