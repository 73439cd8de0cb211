package entity

import "github.com/shopspring/decimal"

// CustomerStatus estado comercial del cliente.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

func (s CustomerStatus) Valid() bool { return s == CustomerActive || s == CustomerInactive }

// Customer representa un cliente. TotalOrders y TotalRevenue inician en cero al crearlo.
type Customer struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	ContactPerson string          `json:"contactPerson" yaml:"contactPerson"`
	Email         string          `json:"email" yaml:"email"`
	Phone         string          `json:"phone" yaml:"phone"`
	Address       string          `json:"address" yaml:"address"`
	TaxID         string          `json:"taxId" yaml:"taxId"` // NIT o documento
	TotalOrders   int             `json:"totalOrders" yaml:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue" yaml:"totalRevenue"`
	Status        CustomerStatus  `json:"status" yaml:"status"`
}

func (c Customer) GetID() string { return c.ID }

func (c Customer) WithID(id string) Customer {
	c.ID = id
	return c
}

func (Customer) Kind() Kind { return KindCustomer }

func (c Customer) SearchTerms() []string {
	return []string{c.Name, c.ContactPerson, c.Email, c.TaxID}
}

func (c Customer) Facet() string { return string(c.Status) }
