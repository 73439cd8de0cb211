package entity

// PartnerType rol comercial del tercero.
type PartnerType string

const (
	PartnerCustomer PartnerType = "customer"
	PartnerSupplier PartnerType = "supplier"
	PartnerBoth     PartnerType = "both"
)

// PartnerStatus estado del tercero.
type PartnerStatus string

const (
	PartnerActive   PartnerStatus = "active"
	PartnerInactive PartnerStatus = "inactive"
)

func (s PartnerStatus) Valid() bool { return s == PartnerActive || s == PartnerInactive }

// Partner tercero genérico (cliente, proveedor o ambos).
type Partner struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Type          PartnerType   `json:"type" yaml:"type"`
	ContactPerson string        `json:"contactPerson" yaml:"contactPerson"`
	Email         string        `json:"email" yaml:"email"`
	Phone         string        `json:"phone" yaml:"phone"`
	Address       string        `json:"address" yaml:"address"`
	TaxID         string        `json:"taxId" yaml:"taxId"`
	Status        PartnerStatus `json:"status" yaml:"status"`
}

func (p Partner) GetID() string { return p.ID }

func (p Partner) WithID(id string) Partner {
	p.ID = id
	return p
}

func (Partner) Kind() Kind { return KindPartner }

func (p Partner) SearchTerms() []string {
	return []string{p.Name, p.ContactPerson, p.Email, p.TaxID}
}

func (p Partner) Facet() string { return string(p.Type) }
