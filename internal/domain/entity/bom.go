package entity

import "github.com/shopspring/decimal"

// BOMStatus estado de la lista de materiales.
type BOMStatus string

const (
	BOMDraft    BOMStatus = "draft"
	BOMActive   BOMStatus = "active"
	BOMObsolete BOMStatus = "obsolete"
)

func (s BOMStatus) Valid() bool {
	switch s {
	case BOMDraft, BOMActive, BOMObsolete:
		return true
	}
	return false
}

// BOM lista de materiales de un producto. TotalCost = Σ cantidad × costo de Components.
// Borrar el producto no borra sus BOMs.
type BOM struct {
	ID          string          `json:"id" yaml:"id"`
	Code        string          `json:"code" yaml:"code"`
	ProductID   string          `json:"productId" yaml:"productId"`
	ProductName string          `json:"productName" yaml:"productName"`
	Version     string          `json:"version" yaml:"version"`
	Components  []BOMComponent  `json:"components" yaml:"components"`
	TotalCost   decimal.Decimal `json:"totalCost" yaml:"totalCost"`
	Status      BOMStatus       `json:"status" yaml:"status"`
}

func (b BOM) GetID() string { return b.ID }

func (b BOM) WithID(id string) BOM {
	b.ID = id
	return b
}

func (BOM) Kind() Kind { return KindBOM }

func (b BOM) SearchTerms() []string { return []string{b.Code, b.ProductName, b.Version} }

func (b BOM) Facet() string { return string(b.Status) }

func (b *BOM) Recalculate() { b.TotalCost = SumLines(b.Components) }
