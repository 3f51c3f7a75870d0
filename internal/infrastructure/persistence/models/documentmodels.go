package models

import (
	"time"

	"keybuddy/internal/shared/constants"
)

// KeyReceiptModel stores the encrypted key receipt PDF for an order.
// One receipt per order.
type KeyReceiptModel struct {
	ID           uint   `gorm:"primarykey"`
	OrderID      uint   `gorm:"uniqueIndex;not null"`
	PDFEncrypted string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

func (KeyReceiptModel) TableName() string {
	return constants.TableKeyReceipts
}

// ManufacturingOrderModel stores the encrypted manufacturing order PDF
// for an order. One per order.
type ManufacturingOrderModel struct {
	ID           uint   `gorm:"primarykey"`
	OrderID      uint   `gorm:"uniqueIndex;not null"`
	PDFEncrypted string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

func (ManufacturingOrderModel) TableName() string {
	return constants.TableManufacturingOrders
}

// InvoiceModel stores encrypted invoice PDFs for a key system. Many
// per system.
type InvoiceModel struct {
	ID           uint   `gorm:"primarykey"`
	SystemID     uint   `gorm:"not null;index:idx_invoices_system"`
	PDFEncrypted string `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

func (InvoiceModel) TableName() string {
	return constants.TableInvoices
}
