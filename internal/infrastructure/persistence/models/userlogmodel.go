package models

import (
	"time"

	"keybuddy/internal/shared/constants"
)

// UserLogModel represents an append-only activity audit row.
type UserLogModel struct {
	ID           uint   `gorm:"primarykey"`
	UserID       uint   `gorm:"index:idx_user_logs_user"`
	ActivityType string `gorm:"not null;size:50;index:idx_user_logs_activity"`
	Details      string `gorm:"type:text"`
	IPAddress    string `gorm:"size:45"`
	Timestamp    time.Time `gorm:"index:idx_user_logs_timestamp"`
}

// TableName specifies the table name for GORM
func (UserLogModel) TableName() string {
	return constants.TableUserLogs
}
