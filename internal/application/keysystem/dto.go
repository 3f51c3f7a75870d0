package keysystem

import (
	"time"

	"keybuddy/internal/domain/keysystem"
)

// KeySystemRequest carries the key system form, covering both the
// Nyckelkort and Standard field sets.
type KeySystemRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	KeyCode    string `json:"key_code"`
	SeriesID   string `json:"series_id"`
	KeyProfile string `json:"key_profile"`
	Fabrikat   string `json:"fabrikat"`
	Koncept    string `json:"koncept"`

	KeyCode2     string `json:"key_code2"`
	SystemNumber string `json:"system_number"`
	Profile2     string `json:"profile2"`
	Delning      string `json:"delning"`
	KeyLocation2 string `json:"key_location2"`
	Fabrikat2    string `json:"fabrikat2"`
	Koncept2     string `json:"koncept2"`
	Flex1        string `json:"flex1"`
	Flex2        string `json:"flex2"`
	Flex3        string `json:"flex3"`

	Notes       string  `json:"notes"`
	BillingPlan string  `json:"billing_plan"`
	Price       float64 `json:"price"`
}

// KeySystemResponse is the API representation of a key system.
type KeySystemResponse struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	KeyCode    string `json:"key_code"`
	SeriesID   string `json:"series_id"`
	KeyProfile string `json:"key_profile"`
	Fabrikat   string `json:"fabrikat"`
	Koncept    string `json:"koncept"`

	KeyCode2     string `json:"key_code2"`
	SystemNumber string `json:"system_number"`
	Profile2     string `json:"profile2"`
	Delning      string `json:"delning"`
	KeyLocation2 string `json:"key_location2"`
	Fabrikat2    string `json:"fabrikat2"`
	Koncept2     string `json:"koncept2"`
	Flex1        string `json:"flex1"`
	Flex2        string `json:"flex2"`
	Flex3        string `json:"flex3"`

	Notes              string     `json:"notes"`
	BillingPlan        string     `json:"billing_plan"`
	Price              float64    `json:"price"`
	IsPaid             bool       `json:"is_paid"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
	NextDueDate        *time.Time `json:"next_due_date,omitempty"`
	InvoiceCount       int        `json:"invoice_count"`
	LastInvoiceDate    *time.Time `json:"last_invoice_date,omitempty"`
	LastSequenceNumber int        `json:"last_sequence_number"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ListRequest carries list filters.
type ListRequest struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	CustomerID uint   `form:"customer_id"`
	Search     string `form:"search"`
	OrderBy    string `form:"order_by"`
	Order      string `form:"order"`
}

// ListResponse is a paginated key system list.
type ListResponse struct {
	KeySystems []*KeySystemResponse `json:"key_systems"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
}

// CatalogEntryResponse is one fabrikat/koncept pair.
type CatalogEntryResponse struct {
	Fabrikat string `json:"fabrikat"`
	Koncept  string `json:"koncept"`
}

func toResponse(ks *keysystem.KeySystem) *KeySystemResponse {
	if ks == nil {
		return nil
	}
	return &KeySystemResponse{
		ID:                 ks.ID(),
		CustomerID:         ks.CustomerID(),
		KeyCode:            ks.KeyCode(),
		SeriesID:           ks.SeriesID(),
		KeyProfile:         ks.KeyProfile(),
		Fabrikat:           ks.Fabrikat(),
		Koncept:            ks.Koncept(),
		KeyCode2:           ks.KeyCode2(),
		SystemNumber:       ks.SystemNumber(),
		Profile2:           ks.Profile2(),
		Delning:            ks.Delning(),
		KeyLocation2:       ks.KeyLocation2(),
		Fabrikat2:          ks.Fabrikat2(),
		Koncept2:           ks.Koncept2(),
		Flex1:              ks.Flex1(),
		Flex2:              ks.Flex2(),
		Flex3:              ks.Flex3(),
		Notes:              ks.Notes(),
		BillingPlan:        ks.BillingPlan().String(),
		Price:              ks.Price(),
		IsPaid:             ks.IsPaid(),
		PaidAt:             ks.PaidAt(),
		NextDueDate:        ks.NextDueDate(),
		InvoiceCount:       ks.InvoiceCount(),
		LastInvoiceDate:    ks.LastInvoiceDate(),
		LastSequenceNumber: ks.LastSequenceNumber(),
		CreatedAt:          ks.CreatedAt(),
		UpdatedAt:          ks.UpdatedAt(),
	}
}

func toAttributes(req KeySystemRequest) keysystem.Attributes {
	return keysystem.Attributes{
		SeriesID:     req.SeriesID,
		KeyProfile:   req.KeyProfile,
		Fabrikat:     req.Fabrikat,
		Koncept:      req.Koncept,
		KeyCode2:     req.KeyCode2,
		SystemNumber: req.SystemNumber,
		Profile2:     req.Profile2,
		Delning:      req.Delning,
		KeyLocation2: req.KeyLocation2,
		Fabrikat2:    req.Fabrikat2,
		Koncept2:     req.Koncept2,
		Flex1:        req.Flex1,
		Flex2:        req.Flex2,
		Flex3:        req.Flex3,
		Notes:        req.Notes,
		BillingPlan:  keysystem.ParseBillingPlan(req.BillingPlan),
		Price:        req.Price,
	}
}
