// Package customer holds the customer aggregate. A customer owns zero
// or more key systems.
package customer

import (
	"fmt"
	"time"
)

type Customer struct {
	id             uint
	company        string
	project        string
	customerNumber string
	orgNumber      string
	address        string
	postalCode     string
	postalAddress  string
	phone          string
	mobilePhone    string
	email          string
	website        string
	// Up to three named key responsibles, matching the receipt forms.
	keyResponsible1 string
	keyResponsible2 string
	keyResponsible3 string
	keyLocation     string
	createdBy       uint
	createdAt       time.Time
	updatedAt       time.Time
}

// Attributes groups the optional customer fields for creation and update.
type Attributes struct {
	Project         string
	CustomerNumber  string
	OrgNumber       string
	Address         string
	PostalCode      string
	PostalAddress   string
	Phone           string
	MobilePhone     string
	Email           string
	Website         string
	KeyResponsible1 string
	KeyResponsible2 string
	KeyResponsible3 string
	KeyLocation     string
}

func NewCustomer(company string, attrs Attributes, createdBy uint) (*Customer, error) {
	if company == "" {
		return nil, fmt.Errorf("company is required")
	}
	if len(company) > 200 {
		return nil, fmt.Errorf("company exceeds maximum length of 200 characters")
	}

	now := time.Now()
	c := &Customer{
		company:   company,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}
	c.applyAttributes(attrs)
	return c, nil
}

func ReconstructCustomer(id uint, company string, attrs Attributes, createdBy uint, createdAt, updatedAt time.Time) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	c := &Customer{
		id:        id,
		company:   company,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	c.applyAttributes(attrs)
	return c, nil
}

func (c *Customer) applyAttributes(attrs Attributes) {
	c.project = attrs.Project
	c.customerNumber = attrs.CustomerNumber
	c.orgNumber = attrs.OrgNumber
	c.address = attrs.Address
	c.postalCode = attrs.PostalCode
	c.postalAddress = attrs.PostalAddress
	c.phone = attrs.Phone
	c.mobilePhone = attrs.MobilePhone
	c.email = attrs.Email
	c.website = attrs.Website
	c.keyResponsible1 = attrs.KeyResponsible1
	c.keyResponsible2 = attrs.KeyResponsible2
	c.keyResponsible3 = attrs.KeyResponsible3
	c.keyLocation = attrs.KeyLocation
}

// Update replaces the mutable fields.
func (c *Customer) Update(company string, attrs Attributes) error {
	if company == "" {
		return fmt.Errorf("company is required")
	}
	c.company = company
	c.applyAttributes(attrs)
	c.updatedAt = time.Now()
	return nil
}

func (c *Customer) ID() uint                { return c.id }
func (c *Customer) Company() string         { return c.company }
func (c *Customer) Project() string         { return c.project }
func (c *Customer) CustomerNumber() string  { return c.customerNumber }
func (c *Customer) OrgNumber() string       { return c.orgNumber }
func (c *Customer) Address() string         { return c.address }
func (c *Customer) PostalCode() string      { return c.postalCode }
func (c *Customer) PostalAddress() string   { return c.postalAddress }
func (c *Customer) Phone() string           { return c.phone }
func (c *Customer) MobilePhone() string     { return c.mobilePhone }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) Website() string         { return c.website }
func (c *Customer) KeyResponsible1() string { return c.keyResponsible1 }
func (c *Customer) KeyResponsible2() string { return c.keyResponsible2 }
func (c *Customer) KeyResponsible3() string { return c.keyResponsible3 }
func (c *Customer) KeyLocation() string     { return c.keyLocation }
func (c *Customer) CreatedBy() uint         { return c.createdBy }
func (c *Customer) CreatedAt() time.Time    { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time    { return c.updatedAt }

func (c *Customer) SetID(id uint) {
	c.id = id
}

// KeyResponsibles returns the non-empty responsible names in order.
func (c *Customer) KeyResponsibles() []string {
	var out []string
	for _, name := range []string{c.keyResponsible1, c.keyResponsible2, c.keyResponsible3} {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
