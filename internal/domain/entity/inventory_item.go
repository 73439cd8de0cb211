package entity

import (
	"time"

	"github.com/jhoicas/erp-manufactura/internal/domain/inventory"
)

// InventoryItemStatus disponibilidad lógica de la existencia.
type InventoryItemStatus string

const (
	InventoryInStock    InventoryItemStatus = "in-stock"
	InventoryReserved   InventoryItemStatus = "reserved"
	InventoryQuarantine InventoryItemStatus = "quarantine"
)

func (s InventoryItemStatus) Valid() bool {
	switch s {
	case InventoryInStock, InventoryReserved, InventoryQuarantine:
		return true
	}
	return false
}

// InventoryItem existencia de un producto en una ubicación de bodega.
type InventoryItem struct {
	ID           string              `json:"id" yaml:"id"`
	ProductID    string              `json:"productId" yaml:"productId"`
	ProductName  string              `json:"productName" yaml:"productName"`
	WarehouseID  string              `json:"warehouseId" yaml:"warehouseId"`
	Location     string              `json:"location" yaml:"location"` // pasillo-estante-nivel
	Category     string              `json:"category" yaml:"category"`
	Quantity     int                 `json:"quantity" yaml:"quantity"`
	Unit         string              `json:"unit" yaml:"unit"`
	ReorderPoint int                 `json:"reorderPoint" yaml:"reorderPoint"`
	LastUpdated  time.Time           `json:"lastUpdated" yaml:"lastUpdated"`
	Status       InventoryItemStatus `json:"status" yaml:"status"`
}

func (i InventoryItem) GetID() string { return i.ID }

func (i InventoryItem) WithID(id string) InventoryItem {
	i.ID = id
	return i
}

func (InventoryItem) Kind() Kind { return KindInventoryItem }

func (i InventoryItem) SearchTerms() []string {
	return []string{i.ProductName, i.Location, i.Category}
}

func (i InventoryItem) Facet() string { return i.Category }

// StockStatus clasificación de disponibilidad derivada de Quantity y ReorderPoint.
func (i InventoryItem) StockStatus() inventory.StockStatus {
	return inventory.ClassifyStock(i.Quantity, i.ReorderPoint)
}
