// Package document holds the encrypted PDF blobs attached to orders
// and key systems: key receipts, manufacturing orders and invoices.
// The PDF content is stored Fernet-encrypted inside the database.
package document

import (
	"fmt"
	"time"
)

// Kind distinguishes the three document tables.
type Kind string

const (
	KindKeyReceipt         Kind = "key_receipt"
	KindManufacturingOrder Kind = "manufacturing_order"
	KindInvoice            Kind = "invoice"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindKeyReceipt, KindManufacturingOrder, KindInvoice:
		return true
	}
	return false
}

// Document is one stored PDF. ParentID is the order ID for receipts
// and manufacturing orders (unique, one per order) and the key system
// ID for invoices (many per system).
type Document struct {
	id           uint
	kind         Kind
	parentID     uint
	pdfEncrypted string
	createdAt    time.Time
}

func NewDocument(kind Kind, parentID uint, pdfEncrypted string) (*Document, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid document kind: %s", kind)
	}
	if parentID == 0 {
		return nil, fmt.Errorf("parent ID is required")
	}
	if pdfEncrypted == "" {
		return nil, fmt.Errorf("document content is required")
	}
	return &Document{
		kind:         kind,
		parentID:     parentID,
		pdfEncrypted: pdfEncrypted,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructDocument(id uint, kind Kind, parentID uint, pdfEncrypted string, createdAt time.Time) *Document {
	return &Document{
		id:           id,
		kind:         kind,
		parentID:     parentID,
		pdfEncrypted: pdfEncrypted,
		createdAt:    createdAt,
	}
}

func (d *Document) ID() uint             { return d.id }
func (d *Document) Kind() Kind           { return d.kind }
func (d *Document) ParentID() uint       { return d.parentID }
func (d *Document) PDFEncrypted() string { return d.pdfEncrypted }
func (d *Document) CreatedAt() time.Time { return d.createdAt }

func (d *Document) SetID(id uint) {
	d.id = id
}
