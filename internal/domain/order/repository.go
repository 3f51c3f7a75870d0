package order

import "context"

// Repository defines the interface for order data operations
type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)
	ListByKeySystem(ctx context.Context, keySystemID uint) ([]*Order, error)
}

// ListFilter represents filtering and pagination options for the order list
type ListFilter struct {
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
	CustomerID  uint   `json:"customer_id,omitempty"`
	KeySystemID uint   `json:"key_system_id,omitempty"`
	Search      string `json:"search,omitempty"`
	OrderBy     string `json:"order_by,omitempty"`
	Order       string `json:"order,omitempty"`
}
