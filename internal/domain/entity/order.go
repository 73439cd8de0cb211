package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de despacho de un pedido simple.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order pedido de cliente sin detalle de líneas (tablero de despachos).
type Order struct {
	ID           string          `json:"id" yaml:"id"`
	OrderNumber  string          `json:"orderNumber" yaml:"orderNumber"`
	CustomerName string          `json:"customerName" yaml:"customerName"`
	OrderDate    time.Time       `json:"orderDate" yaml:"orderDate"`
	DeliveryDate time.Time       `json:"deliveryDate" yaml:"deliveryDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount" yaml:"totalAmount"`
	Status       OrderStatus     `json:"status" yaml:"status"`
}

func (o Order) GetID() string { return o.ID }

func (o Order) WithID(id string) Order {
	o.ID = id
	return o
}

func (Order) Kind() Kind { return KindOrder }

func (o Order) SearchTerms() []string { return []string{o.OrderNumber, o.CustomerName} }

func (o Order) Facet() string { return string(o.Status) }
