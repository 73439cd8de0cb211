package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus ciclo de la orden de compra. No hay tabla de transiciones:
// una orden puede pasar de draft a invoiced directamente.
type PurchaseOrderStatus string

const (
	PurchaseDraft    PurchaseOrderStatus = "draft"
	PurchaseApproved PurchaseOrderStatus = "approved"
	PurchaseOrdered  PurchaseOrderStatus = "ordered"
	PurchaseReceived PurchaseOrderStatus = "received"
	PurchaseInvoiced PurchaseOrderStatus = "invoiced"
)

func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case PurchaseDraft, PurchaseApproved, PurchaseOrdered, PurchaseReceived, PurchaseInvoiced:
		return true
	}
	return false
}

// PurchaseOrder orden de compra a proveedor. TotalAmount = Σ cantidad × precio unitario de Items,
// recalculado en cada edición de líneas desde el formulario.
type PurchaseOrder struct {
	ID           string              `json:"id" yaml:"id"`
	OrderNumber  string              `json:"orderNumber" yaml:"orderNumber"`
	SupplierID   string              `json:"supplierId" yaml:"supplierId"`
	SupplierName string              `json:"supplierName" yaml:"supplierName"`
	OrderDate    time.Time           `json:"orderDate" yaml:"orderDate"`
	ExpectedDate time.Time           `json:"expectedDate" yaml:"expectedDate"`
	Items        []OrderItem         `json:"items" yaml:"items"`
	TotalAmount  decimal.Decimal     `json:"totalAmount" yaml:"totalAmount"`
	Notes        string              `json:"notes" yaml:"notes"`
	Status       PurchaseOrderStatus `json:"status" yaml:"status"`
}

func (o PurchaseOrder) GetID() string { return o.ID }

func (o PurchaseOrder) WithID(id string) PurchaseOrder {
	o.ID = id
	return o
}

func (PurchaseOrder) Kind() Kind { return KindPurchaseOrder }

func (o PurchaseOrder) SearchTerms() []string { return []string{o.OrderNumber, o.SupplierName, o.Notes} }

func (o PurchaseOrder) Facet() string { return string(o.Status) }

// Recalculate reescribe TotalAmount a partir de las líneas.
func (o *PurchaseOrder) Recalculate() { o.TotalAmount = SumLines(o.Items) }
