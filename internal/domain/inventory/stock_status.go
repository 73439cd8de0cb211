package inventory

// StockStatus clasificación de disponibilidad que muestran los listados (no se persiste).
type StockStatus string

const (
	OutOfStock StockStatus = "out-of-stock"
	LowStock   StockStatus = "low-stock"
	Available  StockStatus = "available"
)

// ClassifyStock deriva el estado de disponibilidad:
// sin existencias si stock == 0, bajo si stock <= punto de reorden, disponible en otro caso.
func ClassifyStock(stock, reorderPoint int) StockStatus {
	switch {
	case stock == 0:
		return OutOfStock
	case stock <= reorderPoint:
		return LowStock
	default:
		return Available
	}
}

// SuggestedOrderQty cantidad a pedir para llevar el stock al ideal (1.5 × punto de reorden,
// redondeado hacia arriba para no quedar por debajo).
// Devuelve 0 si el stock está por encima del punto de reorden.
func SuggestedOrderQty(stock, reorderPoint int) int {
	if stock > reorderPoint {
		return 0
	}
	ideal := (reorderPoint*3 + 1) / 2
	if q := ideal - stock; q > 0 {
		return q
	}
	return 0
}
