package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"keybuddy/internal/domain/order"
	"keybuddy/internal/infrastructure/persistence/models"
)

// BackfillOrderKeyResponsible fills in the default key responsible on
// rows imported from databases created before the column existed.
func BackfillOrderKeyResponsible(db *gorm.DB) error {
	result := db.Model(&models.OrderModel{}).
		Where("key_responsible IS NULL OR key_responsible = ''").
		Update("key_responsible", order.DefaultKeyResponsible)
	if result.Error != nil {
		return fmt.Errorf("failed to backfill key responsible: %w", result.Error)
	}
	return nil
}

// BackfillSequenceNumbers recomputes last_sequence_number on key
// systems from their orders. Needed once for databases that predate
// sequence tracking.
func BackfillSequenceNumbers(db *gorm.DB) error {
	result := db.Exec(`
		UPDATE key_systems
		SET last_sequence_number = (
			SELECT COALESCE(MAX(o.sequence_end), 0)
			FROM orders o
			WHERE o.key_system_id = key_systems.id
		)
		WHERE last_sequence_number < (
			SELECT COALESCE(MAX(o.sequence_end), 0)
			FROM orders o
			WHERE o.key_system_id = key_systems.id
		)
	`)
	if result.Error != nil {
		return fmt.Errorf("failed to backfill sequence numbers: %w", result.Error)
	}
	return nil
}
