package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// OrderDocument datos comunes de una orden imprimible (compra o venta).
type OrderDocument struct {
	Title      string // "ORDEN DE COMPRA" / "ORDEN DE VENTA"
	Number     string
	Date       time.Time
	PartyLabel string // "PROVEEDOR" / "CLIENTE"
	PartyName  string
	DueLabel   string
	DueDate    time.Time
	Status     string
	Notes      string
	Items      []entity.OrderItem
	Total      decimal.Decimal
}

// FromPurchaseOrder documento de una orden de compra.
func FromPurchaseOrder(o entity.PurchaseOrder) OrderDocument {
	return OrderDocument{
		Title: "ORDEN DE COMPRA", Number: o.OrderNumber, Date: o.OrderDate,
		PartyLabel: "PROVEEDOR", PartyName: o.SupplierName,
		DueLabel: "Entrega esperada", DueDate: o.ExpectedDate,
		Status: string(o.Status), Notes: o.Notes, Items: o.Items, Total: o.TotalAmount,
	}
}

// FromSalesOrder documento de una orden de venta.
func FromSalesOrder(o entity.SalesOrder) OrderDocument {
	return OrderDocument{
		Title: "ORDEN DE VENTA", Number: o.OrderNumber, Date: o.OrderDate,
		PartyLabel: "CLIENTE", PartyName: o.CustomerName,
		DueLabel: "Fecha de entrega", DueDate: o.DeliveryDate,
		Status: string(o.Status), Notes: o.Notes, Items: o.Items, Total: o.TotalAmount,
	}
}
