// Package order holds the manufacturing order aggregate. Orders
// reserve a contiguous key sequence range on a key system.
package order

import (
	"fmt"
	"time"
)

// DefaultKeyResponsible is the legacy default for rows created before
// the responsible picker existed.
const DefaultKeyResponsible = "Nyckelansvarig 1"

type Order struct {
	id             uint
	customerID     uint
	keySystemID    uint
	keyCode        string
	keyProfile     string
	quantity       int
	sequenceStart  int
	sequenceEnd    int
	keyResponsible string
	orderDate      time.Time
	createdBy      uint
	exportedPDF    bool
}

// NewOrder creates an order. The sequence end is computed once at
// creation and never recomputed.
func NewOrder(customerID, keySystemID uint, keyCode, keyProfile string, quantity, sequenceStart int, keyResponsible string, createdBy uint) (*Order, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if keySystemID == 0 {
		return nil, fmt.Errorf("key system ID is required")
	}
	if keyCode == "" {
		return nil, fmt.Errorf("key code is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if sequenceStart < 0 {
		return nil, fmt.Errorf("sequence start cannot be negative")
	}
	if keyResponsible == "" {
		keyResponsible = DefaultKeyResponsible
	}

	return &Order{
		customerID:     customerID,
		keySystemID:    keySystemID,
		keyCode:        keyCode,
		keyProfile:     keyProfile,
		quantity:       quantity,
		sequenceStart:  sequenceStart,
		sequenceEnd:    sequenceStart + quantity - 1,
		keyResponsible: keyResponsible,
		orderDate:      time.Now(),
		createdBy:      createdBy,
	}, nil
}

func ReconstructOrder(id, customerID, keySystemID uint, keyCode, keyProfile string, quantity, sequenceStart, sequenceEnd int, keyResponsible string, orderDate time.Time, createdBy uint, exportedPDF bool) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	return &Order{
		id:             id,
		customerID:     customerID,
		keySystemID:    keySystemID,
		keyCode:        keyCode,
		keyProfile:     keyProfile,
		quantity:       quantity,
		sequenceStart:  sequenceStart,
		sequenceEnd:    sequenceEnd,
		keyResponsible: keyResponsible,
		orderDate:      orderDate,
		createdBy:      createdBy,
		exportedPDF:    exportedPDF,
	}, nil
}

func (o *Order) ID() uint               { return o.id }
func (o *Order) CustomerID() uint       { return o.customerID }
func (o *Order) KeySystemID() uint      { return o.keySystemID }
func (o *Order) KeyCode() string        { return o.keyCode }
func (o *Order) KeyProfile() string     { return o.keyProfile }
func (o *Order) Quantity() int          { return o.quantity }
func (o *Order) SequenceStart() int     { return o.sequenceStart }
func (o *Order) SequenceEnd() int       { return o.sequenceEnd }
func (o *Order) KeyResponsible() string { return o.keyResponsible }
func (o *Order) OrderDate() time.Time   { return o.orderDate }
func (o *Order) CreatedBy() uint        { return o.createdBy }
func (o *Order) ExportedPDF() bool      { return o.exportedPDF }

func (o *Order) SetID(id uint) {
	o.id = id
}

// MarkExported records that a PDF has been generated for the order.
func (o *Order) MarkExported() {
	o.exportedPDF = true
}
