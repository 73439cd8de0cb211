package entity

// SupplierStatus estado del proveedor.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
	SupplierBlocked  SupplierStatus = "blocked"
)

func (s SupplierStatus) Valid() bool {
	switch s {
	case SupplierActive, SupplierInactive, SupplierBlocked:
		return true
	}
	return false
}

// Supplier proveedor de materias primas o servicios. Rating de 0 a 5.
type Supplier struct {
	ID            string         `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	ContactPerson string         `json:"contactPerson" yaml:"contactPerson"`
	Email         string         `json:"email" yaml:"email"`
	Phone         string         `json:"phone" yaml:"phone"`
	Address       string         `json:"address" yaml:"address"`
	Category      string         `json:"category" yaml:"category"`
	Rating        float64        `json:"rating" yaml:"rating"`
	Status        SupplierStatus `json:"status" yaml:"status"`
}

func (s Supplier) GetID() string { return s.ID }

func (s Supplier) WithID(id string) Supplier {
	s.ID = id
	return s
}

func (Supplier) Kind() Kind { return KindSupplier }

func (s Supplier) SearchTerms() []string {
	return []string{s.Name, s.ContactPerson, s.Email, s.Category}
}

func (s Supplier) Facet() string { return s.Category }
