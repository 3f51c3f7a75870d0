package models

import (
	"time"

	"keybuddy/internal/shared/constants"
)

// CustomerModel represents the database persistence model for customers
type CustomerModel struct {
	ID              uint   `gorm:"primarykey"`
	Company         string `gorm:"not null;size:200;index:idx_customers_company"`
	Project         string `gorm:"size:200"`
	CustomerNumber  string `gorm:"size:50;index:idx_customers_number"`
	OrgNumber       string `gorm:"size:20"`
	Address         string `gorm:"size:200"`
	PostalCode      string `gorm:"size:10"`
	PostalAddress   string `gorm:"size:100"`
	Phone           string `gorm:"size:30"`
	MobilePhone     string `gorm:"size:30"`
	Email           string `gorm:"size:255"`
	Website         string `gorm:"size:255"`
	KeyResponsible1 string `gorm:"size:100"`
	KeyResponsible2 string `gorm:"size:100"`
	KeyResponsible3 string `gorm:"size:100"`
	KeyLocation     string `gorm:"size:200"`
	CreatedBy       uint   `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
