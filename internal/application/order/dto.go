package order

import (
	"time"

	"keybuddy/internal/domain/order"
)

// OrderRequest carries the manufacturing order form.
type OrderRequest struct {
	CustomerID     uint   `json:"customer_id" binding:"required"`
	KeySystemID    uint   `json:"key_system_id" binding:"required"`
	KeyCode        string `json:"key_code" binding:"required"`
	KeyProfile     string `json:"key_profile"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	SequenceStart  int    `json:"sequence_start"`
	KeyResponsible string `json:"key_responsible"`
	IPAddress      string `json:"-"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID             uint      `json:"id"`
	CustomerID     uint      `json:"customer_id"`
	KeySystemID    uint      `json:"key_system_id"`
	KeyCode        string    `json:"key_code"`
	KeyProfile     string    `json:"key_profile"`
	Quantity       int       `json:"quantity"`
	SequenceStart  int       `json:"sequence_start"`
	SequenceEnd    int       `json:"sequence_end"`
	KeyResponsible string    `json:"key_responsible"`
	OrderDate      time.Time `json:"order_date"`
	CreatedBy      uint      `json:"created_by"`
	ExportedPDF    bool      `json:"exported_pdf"`
}

// ListRequest carries list filters.
type ListRequest struct {
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	CustomerID  uint   `form:"customer_id"`
	KeySystemID uint   `form:"key_system_id"`
	Search      string `form:"search"`
	OrderBy     string `form:"order_by"`
	Order       string `form:"order"`
}

// ListResponse is a paginated order list.
type ListResponse struct {
	Orders   []*OrderResponse `json:"orders"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

func toResponse(o *order.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:             o.ID(),
		CustomerID:     o.CustomerID(),
		KeySystemID:    o.KeySystemID(),
		KeyCode:        o.KeyCode(),
		KeyProfile:     o.KeyProfile(),
		Quantity:       o.Quantity(),
		SequenceStart:  o.SequenceStart(),
		SequenceEnd:    o.SequenceEnd(),
		KeyResponsible: o.KeyResponsible(),
		OrderDate:      o.OrderDate(),
		CreatedBy:      o.CreatedBy(),
		ExportedPDF:    o.ExportedPDF(),
	}
}
