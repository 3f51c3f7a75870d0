package customer

import "context"

// Repository defines the interface for customer data operations
type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Customer, int64, error)
	ExistsByCustomerNumber(ctx context.Context, customerNumber string) (bool, error)
}

// ListFilter represents filtering and pagination options for the customer list
type ListFilter struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search,omitempty"`
	OrderBy  string `json:"order_by,omitempty"`
	Order    string `json:"order,omitempty"`
}
