package models

import (
	"time"

	"keybuddy/internal/shared/constants"
)

// OrderModel represents the database persistence model for orders
type OrderModel struct {
	ID             uint   `gorm:"primarykey"`
	CustomerID     uint   `gorm:"not null;index:idx_orders_customer"`
	KeySystemID    uint   `gorm:"not null;index:idx_orders_key_system"`
	KeyCode        string `gorm:"not null;size:100"`
	KeyProfile     string `gorm:"size:100"`
	Quantity       int    `gorm:"not null"`
	SequenceStart  int    `gorm:"not null"`
	SequenceEnd    int    `gorm:"not null"`
	KeyResponsible string `gorm:"size:100;default:'Nyckelansvarig 1'"`
	OrderDate      time.Time
	CreatedBy      uint `gorm:"index"`
	ExportedPDF    bool `gorm:"default:false"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return constants.TableOrders
}
