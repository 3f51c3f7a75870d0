package customer

import (
	"time"

	"keybuddy/internal/domain/customer"
)

// CustomerRequest carries the customer form. The same shape is used
// for create and update.
type CustomerRequest struct {
	Company         string `json:"company" binding:"required"`
	Project         string `json:"project"`
	CustomerNumber  string `json:"customer_number"`
	OrgNumber       string `json:"org_number"`
	Address         string `json:"address"`
	PostalCode      string `json:"postal_code"`
	PostalAddress   string `json:"postal_address"`
	Phone           string `json:"phone"`
	MobilePhone     string `json:"mobile_phone"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	KeyResponsible1 string `json:"key_responsible1"`
	KeyResponsible2 string `json:"key_responsible2"`
	KeyResponsible3 string `json:"key_responsible3"`
	KeyLocation     string `json:"key_location"`
}

// CustomerResponse is the API representation of a customer.
type CustomerResponse struct {
	ID              uint      `json:"id"`
	Company         string    `json:"company"`
	Project         string    `json:"project"`
	CustomerNumber  string    `json:"customer_number"`
	OrgNumber       string    `json:"org_number"`
	Address         string    `json:"address"`
	PostalCode      string    `json:"postal_code"`
	PostalAddress   string    `json:"postal_address"`
	Phone           string    `json:"phone"`
	MobilePhone     string    `json:"mobile_phone"`
	Email           string    `json:"email"`
	Website         string    `json:"website"`
	KeyResponsible1 string    `json:"key_responsible1"`
	KeyResponsible2 string    `json:"key_responsible2"`
	KeyResponsible3 string    `json:"key_responsible3"`
	KeyLocation     string    `json:"key_location"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListRequest carries list filters.
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	OrderBy  string `form:"order_by"`
	Order    string `form:"order"`
}

// ListResponse is a paginated customer list.
type ListResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

func toResponse(c *customer.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:              c.ID(),
		Company:         c.Company(),
		Project:         c.Project(),
		CustomerNumber:  c.CustomerNumber(),
		OrgNumber:       c.OrgNumber(),
		Address:         c.Address(),
		PostalCode:      c.PostalCode(),
		PostalAddress:   c.PostalAddress(),
		Phone:           c.Phone(),
		MobilePhone:     c.MobilePhone(),
		Email:           c.Email(),
		Website:         c.Website(),
		KeyResponsible1: c.KeyResponsible1(),
		KeyResponsible2: c.KeyResponsible2(),
		KeyResponsible3: c.KeyResponsible3(),
		KeyLocation:     c.KeyLocation(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func toAttributes(req CustomerRequest) customer.Attributes {
	return customer.Attributes{
		Project:         req.Project,
		CustomerNumber:  req.CustomerNumber,
		OrgNumber:       req.OrgNumber,
		Address:         req.Address,
		PostalCode:      req.PostalCode,
		PostalAddress:   req.PostalAddress,
		Phone:           req.Phone,
		MobilePhone:     req.MobilePhone,
		Email:           req.Email,
		Website:         req.Website,
		KeyResponsible1: req.KeyResponsible1,
		KeyResponsible2: req.KeyResponsible2,
		KeyResponsible3: req.KeyResponsible3,
		KeyLocation:     req.KeyLocation,
	}
}
