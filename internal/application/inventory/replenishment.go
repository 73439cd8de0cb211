// Package inventory lista de reposición a partir del catálogo de productos.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/inventory"
)

// Suggestion producto bajo el punto de reorden con la cantidad sugerida de pedido.
type Suggestion struct {
	ProductID          string                `json:"productId"`
	Code               string                `json:"code"`
	ProductName        string                `json:"productName"`
	CurrentStock       int                   `json:"currentStock"`
	ReorderPoint       int                   `json:"reorderPoint"`
	Status             inventory.StockStatus `json:"status"`
	SuggestedOrderQty  int                   `json:"suggestedOrderQty"`
	UnitCost           decimal.Decimal       `json:"unitCost"`
	EstimatedOrderCost decimal.Decimal       `json:"estimatedOrderCost"`
	GrossMarginPct     decimal.Decimal       `json:"grossMarginPct"`
	Priority           int                   `json:"priority"` // 1 = más urgente
}

// Replenishment devuelve los productos activos agotados o bajo el punto de reorden,
// ordenados por margen bruto y luego por déficit, con prioridad asignada.
func Replenishment(products []entity.Product) []Suggestion {
	hundred := decimal.NewFromInt(100)

	out := make([]Suggestion, 0, len(products))
	for _, p := range products {
		if p.Status == entity.ProductDiscontinued {
			continue
		}
		status := inventory.ClassifyStock(p.Stock, p.ReorderPoint)
		if status == inventory.Available {
			continue
		}
		qty := inventory.SuggestedOrderQty(p.Stock, p.ReorderPoint)

		var margin decimal.Decimal
		if p.Price.GreaterThan(decimal.Zero) {
			margin = p.Price.Sub(p.Cost).Div(p.Price).Mul(hundred).Round(2)
		}
		out = append(out, Suggestion{
			ProductID:          p.ID,
			Code:               p.Code,
			ProductName:        p.Name,
			CurrentStock:       p.Stock,
			ReorderPoint:       p.ReorderPoint,
			Status:             status,
			SuggestedOrderQty:  qty,
			UnitCost:           p.Cost,
			EstimatedOrderCost: p.Cost.Mul(decimal.NewFromInt(int64(qty))),
			GrossMarginPct:     margin,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.GrossMarginPct.Equal(b.GrossMarginPct) {
			return a.GrossMarginPct.GreaterThan(b.GrossMarginPct)
		}
		return a.ReorderPoint-a.CurrentStock > b.ReorderPoint-b.CurrentStock
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}
