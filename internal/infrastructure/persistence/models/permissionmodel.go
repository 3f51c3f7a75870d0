package models

import (
	"time"

	"keybuddy/internal/shared/constants"
)

// PermissionModel represents an individually granted permission row.
// Role-default permissions are not stored here; this table only holds
// the per-user extras.
type PermissionModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_permissions_user_type,priority:1"`
	PermissionType string `gorm:"not null;size:50;uniqueIndex:idx_permissions_user_type,priority:2"`
	GrantedBy      uint
	GrantedAt      time.Time
}

// TableName specifies the table name for GORM
func (PermissionModel) TableName() string {
	return constants.TablePermissions
}
