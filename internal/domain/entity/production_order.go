package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionOrderStatus estado de la orden de producción.
type ProductionOrderStatus string

const (
	ProductionPlanned    ProductionOrderStatus = "planned"
	ProductionInProgress ProductionOrderStatus = "in-progress"
	ProductionCompleted  ProductionOrderStatus = "completed"
	ProductionOnHold     ProductionOrderStatus = "on-hold"
	ProductionCancelled  ProductionOrderStatus = "cancelled"
)

func (s ProductionOrderStatus) Valid() bool {
	switch s {
	case ProductionPlanned, ProductionInProgress, ProductionCompleted, ProductionOnHold, ProductionCancelled:
		return true
	}
	return false
}

// Priority prioridad de programación.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ProductionOrder orden de fabricación de un producto en una máquina.
type ProductionOrder struct {
	ID               string                `json:"id" yaml:"id"`
	OrderNumber      string                `json:"orderNumber" yaml:"orderNumber"`
	ProductID        string                `json:"productId" yaml:"productId"`
	ProductName      string                `json:"productName" yaml:"productName"`
	Quantity         decimal.Decimal       `json:"quantity" yaml:"quantity"`
	ProducedQuantity decimal.Decimal       `json:"producedQuantity" yaml:"producedQuantity"`
	MachineID        string                `json:"machineId" yaml:"machineId"`
	StartDate        time.Time             `json:"startDate" yaml:"startDate"`
	DueDate          time.Time             `json:"dueDate" yaml:"dueDate"`
	Priority         Priority              `json:"priority" yaml:"priority"`
	Status           ProductionOrderStatus `json:"status" yaml:"status"`
}

func (o ProductionOrder) GetID() string { return o.ID }

func (o ProductionOrder) WithID(id string) ProductionOrder {
	o.ID = id
	return o
}

func (ProductionOrder) Kind() Kind { return KindProductionOrder }

func (o ProductionOrder) SearchTerms() []string { return []string{o.OrderNumber, o.ProductName} }

func (o ProductionOrder) Facet() string { return string(o.Status) }

// Progress porcentaje producido (0 si la cantidad planeada es cero).
func (o ProductionOrder) Progress() decimal.Decimal {
	if o.Quantity.IsZero() {
		return decimal.Zero
	}
	return o.ProducedQuantity.Div(o.Quantity).Mul(decimal.NewFromInt(100)).Round(2)
}
