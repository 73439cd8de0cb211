package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse estado del backend.
type HealthResponse struct {
	Status  string         `json:"status"`
	Storage string         `json:"storage"`
	Records map[string]int `json:"records,omitempty"`
}

// TotalsResponse montos acumulados por tipo de documento.
type TotalsResponse struct {
	Orders         decimal.Decimal `json:"orders"`
	PurchaseOrders decimal.Decimal `json:"purchaseOrders"`
	SalesOrders    decimal.Decimal `json:"salesOrders"`
	BOMCost        decimal.Decimal `json:"bomCost"`
}
