package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/infrastructure/persistence/models"
)

// SeedKeyCatalogs resets both fabrikat/koncept reference catalogs to
// the built-in defaults. The reseed is destructive on purpose: the
// catalog is reference data and local edits are not preserved across
// upgrades.
func SeedKeyCatalogs(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM key_catalog").Error; err != nil {
			return fmt.Errorf("failed to clear key catalog: %w", err)
		}
		if err := tx.Exec("DELETE FROM key_catalog2").Error; err != nil {
			return fmt.Errorf("failed to clear secondary key catalog: %w", err)
		}

		for _, entry := range keysystem.DefaultCatalog() {
			if err := tx.Create(&models.KeyCatalogModel{
				Fabrikat: entry.Fabrikat,
				Koncept:  entry.Koncept,
			}).Error; err != nil {
				return fmt.Errorf("failed to seed key catalog: %w", err)
			}
			if err := tx.Create(&models.KeyCatalog2Model{
				Fabrikat: entry.Fabrikat,
				Koncept:  entry.Koncept,
			}).Error; err != nil {
				return fmt.Errorf("failed to seed secondary key catalog: %w", err)
			}
		}

		return nil
	})
}
