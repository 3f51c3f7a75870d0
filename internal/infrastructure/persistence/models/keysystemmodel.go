package models

import (
	"time"

	"keybuddy/internal/shared/constants"
)

// KeySystemModel represents the database persistence model for key systems
type KeySystemModel struct {
	ID         uint   `gorm:"primarykey"`
	CustomerID uint   `gorm:"not null;index:idx_key_systems_customer"`
	KeyCode    string `gorm:"size:100;index:idx_key_systems_code"`
	SeriesID   string `gorm:"size:100"`
	KeyProfile string `gorm:"size:100"`
	Fabrikat   string `gorm:"size:100"`
	Koncept    string `gorm:"size:100"`

	// "Standard & system nycklar" scheme
	KeyCode2     string `gorm:"size:100"`
	SystemNumber string `gorm:"size:100"`
	Profile2     string `gorm:"size:100"`
	Delning      string `gorm:"size:100"`
	KeyLocation2 string `gorm:"size:200"`
	Fabrikat2    string `gorm:"size:100"`
	Koncept2     string `gorm:"size:100"`
	Flex1        string `gorm:"size:100"`
	Flex2        string `gorm:"size:100"`
	Flex3        string `gorm:"size:100"`

	Notes string `gorm:"type:text"`

	BillingPlan        string  `gorm:"size:50"`
	Price              float64 `gorm:"default:0"`
	IsPaid             bool    `gorm:"default:false"`
	PaidAt             *time.Time
	InvoiceCount       int `gorm:"default:0"`
	LastInvoiceDate    *time.Time
	LastSequenceNumber int `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (KeySystemModel) TableName() string {
	return constants.TableKeySystems
}
