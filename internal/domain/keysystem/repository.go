package keysystem

import "context"

// Repository defines the interface for key system data operations
type Repository interface {
	Create(ctx context.Context, ks *KeySystem) error
	GetByID(ctx context.Context, id uint) (*KeySystem, error)
	Update(ctx context.Context, ks *KeySystem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*KeySystem, int64, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*KeySystem, error)

	// UpdateSequenceNumber sets last_sequence_number directly. Used by
	// the order flow, which updates it opportunistically after each
	// order.
	UpdateSequenceNumber(ctx context.Context, id uint, sequenceEnd int) error
}

// CatalogRepository serves the fabrikat/koncept reference catalogs.
type CatalogRepository interface {
	// List returns the primary catalog.
	List(ctx context.Context) ([]CatalogEntry, error)

	// ListSecondary returns the "Standard" scheme catalog.
	ListSecondary(ctx context.Context) ([]CatalogEntry, error)
}

// ListFilter represents filtering and pagination options for the key system list
type ListFilter struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	CustomerID uint   `json:"customer_id,omitempty"`
	Search     string `json:"search,omitempty"`
	OrderBy    string `json:"order_by,omitempty"`
	Order      string `json:"order,omitempty"`
}
