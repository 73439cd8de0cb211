package entity

import (
	"github.com/jhoicas/erp-manufactura/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// ProductStatus estado de catálogo del producto.
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductDiscontinued ProductStatus = "discontinued"
)

// Valid indica si el estado pertenece al conjunto declarado.
func (s ProductStatus) Valid() bool {
	return s == ProductActive || s == ProductDiscontinued
}

// Product representa un producto o SKU del catálogo.
// Stock es la existencia total; ReorderPoint el umbral de reposición.
type Product struct {
	ID           string          `json:"id" yaml:"id"`
	Code         string          `json:"code" yaml:"code"` // SKU
	Name         string          `json:"name" yaml:"name"`
	Description  string          `json:"description" yaml:"description"`
	Category     string          `json:"category" yaml:"category"`
	Unit         string          `json:"unit" yaml:"unit"`
	Price        decimal.Decimal `json:"price" yaml:"price"` // precio de venta
	Cost         decimal.Decimal `json:"cost" yaml:"cost"`
	Stock        int             `json:"stock" yaml:"stock"`
	ReorderPoint int             `json:"reorderPoint" yaml:"reorderPoint"`
	Status       ProductStatus   `json:"status" yaml:"status"`
}

func (p Product) GetID() string { return p.ID }

func (p Product) WithID(id string) Product {
	p.ID = id
	return p
}

func (Product) Kind() Kind { return KindProduct }

func (p Product) SearchTerms() []string { return []string{p.Code, p.Name, p.Description, p.Category} }

func (p Product) Facet() string { return p.Category }

// StockStatus clasificación de disponibilidad derivada (no se persiste).
func (p Product) StockStatus() inventory.StockStatus {
	return inventory.ClassifyStock(p.Stock, p.ReorderPoint)
}
