// Package keysystem holds the key system aggregate. A key system
// belongs to one customer and carries either "Nyckelkort" fields
// (keyCode, seriesID, keyProfile) or "Standard" fields (keyCode2,
// systemNumber, profile2, ...). Both sets can technically be present;
// the schema does not force the split.
package keysystem

import (
	"fmt"
	"time"
)

type KeySystem struct {
	id         uint
	customerID uint

	// Nyckelkort scheme
	keyCode    string
	seriesID   string
	keyProfile string
	fabrikat   string
	koncept    string

	// Standard scheme
	keyCode2     string
	systemNumber string
	profile2     string
	delning      string
	keyLocation2 string
	fabrikat2    string
	koncept2     string
	flex1        string
	flex2        string
	flex3        string

	notes string

	billingPlan        BillingPlan
	price              float64
	isPaid             bool
	paidAt             *time.Time
	invoiceCount       int
	lastInvoiceDate    *time.Time
	lastSequenceNumber int

	createdAt time.Time
	updatedAt time.Time
}

// Attributes groups the optional key system fields.
type Attributes struct {
	SeriesID     string
	KeyProfile   string
	Fabrikat     string
	Koncept      string
	KeyCode2     string
	SystemNumber string
	Profile2     string
	Delning      string
	KeyLocation2 string
	Fabrikat2    string
	Koncept2     string
	Flex1        string
	Flex2        string
	Flex3        string
	Notes        string
	BillingPlan  BillingPlan
	Price        float64
}

func NewKeySystem(customerID uint, keyCode string, attrs Attributes) (*KeySystem, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if keyCode == "" && attrs.KeyCode2 == "" {
		return nil, fmt.Errorf("a key code is required")
	}

	now := time.Now()
	ks := &KeySystem{
		customerID: customerID,
		keyCode:    keyCode,
		createdAt:  now,
		updatedAt:  now,
	}
	ks.applyAttributes(attrs)
	return ks, nil
}

// State carries the billing and sequence fields from persistence.
type State struct {
	IsPaid             bool
	PaidAt             *time.Time
	InvoiceCount       int
	LastInvoiceDate    *time.Time
	LastSequenceNumber int
}

func ReconstructKeySystem(id, customerID uint, keyCode string, attrs Attributes, state State, createdAt, updatedAt time.Time) (*KeySystem, error) {
	if id == 0 {
		return nil, fmt.Errorf("key system ID cannot be zero")
	}
	ks := &KeySystem{
		id:                 id,
		customerID:         customerID,
		keyCode:            keyCode,
		isPaid:             state.IsPaid,
		paidAt:             state.PaidAt,
		invoiceCount:       state.InvoiceCount,
		lastInvoiceDate:    state.LastInvoiceDate,
		lastSequenceNumber: state.LastSequenceNumber,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
	ks.applyAttributes(attrs)
	return ks, nil
}

func (ks *KeySystem) applyAttributes(attrs Attributes) {
	ks.seriesID = attrs.SeriesID
	ks.keyProfile = attrs.KeyProfile
	ks.fabrikat = attrs.Fabrikat
	ks.koncept = attrs.Koncept
	ks.keyCode2 = attrs.KeyCode2
	ks.systemNumber = attrs.SystemNumber
	ks.profile2 = attrs.Profile2
	ks.delning = attrs.Delning
	ks.keyLocation2 = attrs.KeyLocation2
	ks.fabrikat2 = attrs.Fabrikat2
	ks.koncept2 = attrs.Koncept2
	ks.flex1 = attrs.Flex1
	ks.flex2 = attrs.Flex2
	ks.flex3 = attrs.Flex3
	ks.notes = attrs.Notes
	ks.billingPlan = attrs.BillingPlan
	ks.price = attrs.Price
}

// Update replaces the mutable fields.
func (ks *KeySystem) Update(keyCode string, attrs Attributes) error {
	if keyCode == "" && attrs.KeyCode2 == "" {
		return fmt.Errorf("a key code is required")
	}
	ks.keyCode = keyCode
	ks.applyAttributes(attrs)
	ks.updatedAt = time.Now()
	return nil
}

func (ks *KeySystem) ID() uint                    { return ks.id }
func (ks *KeySystem) CustomerID() uint            { return ks.customerID }
func (ks *KeySystem) KeyCode() string             { return ks.keyCode }
func (ks *KeySystem) SeriesID() string            { return ks.seriesID }
func (ks *KeySystem) KeyProfile() string          { return ks.keyProfile }
func (ks *KeySystem) Fabrikat() string            { return ks.fabrikat }
func (ks *KeySystem) Koncept() string             { return ks.koncept }
func (ks *KeySystem) KeyCode2() string            { return ks.keyCode2 }
func (ks *KeySystem) SystemNumber() string        { return ks.systemNumber }
func (ks *KeySystem) Profile2() string            { return ks.profile2 }
func (ks *KeySystem) Delning() string             { return ks.delning }
func (ks *KeySystem) KeyLocation2() string        { return ks.keyLocation2 }
func (ks *KeySystem) Fabrikat2() string           { return ks.fabrikat2 }
func (ks *KeySystem) Koncept2() string            { return ks.koncept2 }
func (ks *KeySystem) Flex1() string               { return ks.flex1 }
func (ks *KeySystem) Flex2() string               { return ks.flex2 }
func (ks *KeySystem) Flex3() string               { return ks.flex3 }
func (ks *KeySystem) Notes() string               { return ks.notes }
func (ks *KeySystem) BillingPlan() BillingPlan    { return ks.billingPlan }
func (ks *KeySystem) Price() float64              { return ks.price }
func (ks *KeySystem) IsPaid() bool                { return ks.isPaid }
func (ks *KeySystem) PaidAt() *time.Time          { return ks.paidAt }
func (ks *KeySystem) InvoiceCount() int           { return ks.invoiceCount }
func (ks *KeySystem) LastInvoiceDate() *time.Time { return ks.lastInvoiceDate }
func (ks *KeySystem) LastSequenceNumber() int     { return ks.lastSequenceNumber }
func (ks *KeySystem) CreatedAt() time.Time        { return ks.createdAt }
func (ks *KeySystem) UpdatedAt() time.Time        { return ks.updatedAt }

func (ks *KeySystem) SetID(id uint) {
	ks.id = id
}

// MarkPaid records a payment.
func (ks *KeySystem) MarkPaid(at time.Time) {
	ks.isPaid = true
	ks.paidAt = &at
	ks.updatedAt = time.Now()
}

// MarkUnpaid clears the paid flag.
func (ks *KeySystem) MarkUnpaid() {
	ks.isPaid = false
	ks.updatedAt = time.Now()
}

// PaymentExpired reports whether a recurring plan's paid period has
// elapsed at the given time, meaning the system should revert to
// unpaid.
func (ks *KeySystem) PaymentExpired(now time.Time) bool {
	if !ks.isPaid || ks.paidAt == nil || !ks.billingPlan.IsRecurring() {
		return false
	}
	return now.Sub(*ks.paidAt) >= ks.billingPlan.Period()
}

// NextDueDate returns when the current paid period ends, or nil for
// one-time and unpaid systems.
func (ks *KeySystem) NextDueDate() *time.Time {
	if ks.paidAt == nil || !ks.billingPlan.IsRecurring() {
		return nil
	}
	due := ks.paidAt.Add(ks.billingPlan.Period())
	return &due
}

// RecordInvoice increments the invoice counter.
func (ks *KeySystem) RecordInvoice(at time.Time) {
	ks.invoiceCount++
	ks.lastInvoiceDate = &at
	ks.updatedAt = time.Now()
}

// AdvanceSequence moves last_sequence_number forward to end. The value
// only grows; a lower end leaves it untouched.
func (ks *KeySystem) AdvanceSequence(end int) {
	if end > ks.lastSequenceNumber {
		ks.lastSequenceNumber = end
		ks.updatedAt = time.Now()
	}
}
