package entity

import (
	"github.com/shopspring/decimal"
)

// FormulationStatus estado de la fórmula.
type FormulationStatus string

const (
	FormulationDraft    FormulationStatus = "draft"
	FormulationActive   FormulationStatus = "active"
	FormulationArchived FormulationStatus = "archived"
)

func (s FormulationStatus) Valid() bool {
	switch s {
	case FormulationDraft, FormulationActive, FormulationArchived:
		return true
	}
	return false
}

// Formulation receta de un producto por lote. Cost = Σ cantidad × costo unitario de Ingredients.
type Formulation struct {
	ID          string            `json:"id" yaml:"id"`
	Code        string            `json:"code" yaml:"code"`
	Name        string            `json:"name" yaml:"name"`
	ProductID   string            `json:"productId" yaml:"productId"`
	Version     string            `json:"version" yaml:"version"`
	BatchSize   decimal.Decimal   `json:"batchSize" yaml:"batchSize"`
	Ingredients []Ingredient      `json:"ingredients" yaml:"ingredients"`
	Cost        decimal.Decimal   `json:"cost" yaml:"cost"`
	Status      FormulationStatus `json:"status" yaml:"status"`
}

func (f Formulation) GetID() string { return f.ID }

func (f Formulation) WithID(id string) Formulation {
	f.ID = id
	return f
}

func (Formulation) Kind() Kind { return KindFormulation }

func (f Formulation) SearchTerms() []string { return []string{f.Code, f.Name, f.Version} }

func (f Formulation) Facet() string { return string(f.Status) }

func (f *Formulation) Recalculate() { f.Cost = SumLines(f.Ingredients) }
