package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderStatus ciclo de la orden de venta.
type SalesOrderStatus string

const (
	SalesDraft     SalesOrderStatus = "draft"
	SalesConfirmed SalesOrderStatus = "confirmed"
	SalesShipped   SalesOrderStatus = "shipped"
	SalesDelivered SalesOrderStatus = "delivered"
	SalesInvoiced  SalesOrderStatus = "invoiced"
	SalesCancelled SalesOrderStatus = "cancelled"
)

func (s SalesOrderStatus) Valid() bool {
	switch s {
	case SalesDraft, SalesConfirmed, SalesShipped, SalesDelivered, SalesInvoiced, SalesCancelled:
		return true
	}
	return false
}

// SalesOrder orden de venta a cliente.
type SalesOrder struct {
	ID           string           `json:"id" yaml:"id"`
	OrderNumber  string           `json:"orderNumber" yaml:"orderNumber"`
	CustomerID   string           `json:"customerId" yaml:"customerId"`
	CustomerName string           `json:"customerName" yaml:"customerName"`
	OrderDate    time.Time        `json:"orderDate" yaml:"orderDate"`
	DeliveryDate time.Time        `json:"deliveryDate" yaml:"deliveryDate"`
	Items        []OrderItem      `json:"items" yaml:"items"`
	TotalAmount  decimal.Decimal  `json:"totalAmount" yaml:"totalAmount"`
	Notes        string           `json:"notes" yaml:"notes"`
	Status       SalesOrderStatus `json:"status" yaml:"status"`
}

func (o SalesOrder) GetID() string { return o.ID }

func (o SalesOrder) WithID(id string) SalesOrder {
	o.ID = id
	return o
}

func (SalesOrder) Kind() Kind { return KindSalesOrder }

func (o SalesOrder) SearchTerms() []string { return []string{o.OrderNumber, o.CustomerName, o.Notes} }

func (o SalesOrder) Facet() string { return string(o.Status) }

func (o *SalesOrder) Recalculate() { o.TotalAmount = SumLines(o.Items) }
