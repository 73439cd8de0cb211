package entity

import "github.com/shopspring/decimal"

// Line línea de detalle (ítem de orden, ingrediente, componente) con cantidad × precio.
type Line interface {
	LineTotal() decimal.Decimal
}

// SumLines suma cantidad × precio de todas las líneas.
func SumLines[L Line](lines []L) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// OrderItem línea de una orden de compra o de venta.
type OrderItem struct {
	ProductID   string          `json:"productId" yaml:"productId"`
	ProductName string          `json:"productName" yaml:"productName"`
	Quantity    decimal.Decimal `json:"quantity" yaml:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice" yaml:"unitPrice"`
}

// LineTotal cantidad × precio unitario.
func (i OrderItem) LineTotal() decimal.Decimal { return i.Quantity.Mul(i.UnitPrice) }

// Ingredient materia prima de una formulación.
type Ingredient struct {
	MaterialName string          `json:"materialName" yaml:"materialName"`
	Quantity     decimal.Decimal `json:"quantity" yaml:"quantity"`
	Unit         string          `json:"unit" yaml:"unit"`
	UnitCost     decimal.Decimal `json:"unitCost" yaml:"unitCost"`
}

func (i Ingredient) LineTotal() decimal.Decimal { return i.Quantity.Mul(i.UnitCost) }

// BOMComponent componente de una lista de materiales. Cost es el costo unitario.
type BOMComponent struct {
	Name     string          `json:"name" yaml:"name"`
	Quantity decimal.Decimal `json:"quantity" yaml:"quantity"`
	Unit     string          `json:"unit" yaml:"unit"`
	Cost     decimal.Decimal `json:"cost" yaml:"cost"`
}

func (c BOMComponent) LineTotal() decimal.Decimal { return c.Quantity.Mul(c.Cost) }
