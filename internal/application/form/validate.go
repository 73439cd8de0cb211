package form

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// violations acumula campos inválidos de un borrador.
type violations []string

func (v *violations) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		*v = append(*v, field+" es requerido")
	}
}

func (v *violations) nonNegative(field string, d decimal.Decimal) {
	if d.IsNegative() {
		*v = append(*v, field+" no puede ser negativo")
	}
}

func (v *violations) nonNegativeInt(field string, n int) {
	if n < 0 {
		*v = append(*v, field+" no puede ser negativo")
	}
}

func (v *violations) between(field string, f, lo, hi float64) {
	if f < lo || f > hi {
		*v = append(*v, fmt.Sprintf("%s debe estar entre %g y %g", field, lo, hi))
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(v, "; "))
}

// Validate requeridos y cotas numéricas de un borrador. No hay reglas entre campos.
func Validate[T entity.Entity[T]](draft T) error {
	var v violations
	switch d := any(draft).(type) {
	case entity.Partner:
		v.required("name", d.Name)
	case entity.Product:
		v.required("code", d.Code)
		v.required("name", d.Name)
		v.nonNegative("price", d.Price)
		v.nonNegative("cost", d.Cost)
		v.nonNegativeInt("stock", d.Stock)
		v.nonNegativeInt("reorderPoint", d.ReorderPoint)
	case entity.Order:
		v.required("customerName", d.CustomerName)
	case entity.InventoryItem:
		v.required("productName", d.ProductName)
		v.nonNegativeInt("quantity", d.Quantity)
		v.nonNegativeInt("reorderPoint", d.ReorderPoint)
	case entity.PurchaseOrder:
		v.required("supplierName", d.SupplierName)
		orderItems(&v, d.Items)
	case entity.SalesOrder:
		v.required("customerName", d.CustomerName)
		orderItems(&v, d.Items)
	case entity.Machine:
		v.required("code", d.Code)
		v.required("name", d.Name)
		v.between("efficiency", d.Efficiency, 0, 100)
	case entity.Customer:
		v.required("name", d.Name)
	case entity.Supplier:
		v.required("name", d.Name)
		v.between("rating", d.Rating, 0, 5)
	case entity.Employee:
		v.required("firstName", d.FirstName)
		v.required("lastName", d.LastName)
		v.nonNegative("salary", d.Salary)
	case entity.ProductionOrder:
		v.required("productName", d.ProductName)
		v.nonNegative("quantity", d.Quantity)
		v.nonNegative("producedQuantity", d.ProducedQuantity)
	case entity.QualityControl:
		v.required("inspector", d.Inspector)
		v.nonNegativeInt("sampleSize", d.SampleSize)
		v.nonNegativeInt("defectsFound", d.DefectsFound)
	case entity.Warehouse:
		v.required("code", d.Code)
		v.required("name", d.Name)
		v.nonNegativeInt("capacity", d.Capacity)
	case entity.AccountingEntry:
		v.required("account", d.Account)
		v.nonNegative("debit", d.Debit)
		v.nonNegative("credit", d.Credit)
	case entity.Project:
		v.required("name", d.Name)
		v.nonNegative("budget", d.Budget)
		v.between("progress", float64(d.Progress), 0, 100)
	case entity.Formulation:
		v.required("name", d.Name)
		v.nonNegative("batchSize", d.BatchSize)
		for i, in := range d.Ingredients {
			v.required(fmt.Sprintf("ingredients[%d].materialName", i), in.MaterialName)
			v.nonNegative(fmt.Sprintf("ingredients[%d].quantity", i), in.Quantity)
			v.nonNegative(fmt.Sprintf("ingredients[%d].unitCost", i), in.UnitCost)
		}
	case entity.BOM:
		v.required("productName", d.ProductName)
		for i, c := range d.Components {
			v.required(fmt.Sprintf("components[%d].name", i), c.Name)
			v.nonNegative(fmt.Sprintf("components[%d].quantity", i), c.Quantity)
			v.nonNegative(fmt.Sprintf("components[%d].cost", i), c.Cost)
		}
	}
	return v.err()
}

func orderItems(v *violations, items []entity.OrderItem) {
	for i, it := range items {
		v.required(fmt.Sprintf("items[%d].productName", i), it.ProductName)
		v.nonNegative(fmt.Sprintf("items[%d].quantity", i), it.Quantity)
		v.nonNegative(fmt.Sprintf("items[%d].unitPrice", i), it.UnitPrice)
	}
}
