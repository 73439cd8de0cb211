// Package adapter define el contrato de acceso a datos (DataAdapter) que implementan
// el adaptador mock en memoria y el adaptador HTTP.
package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/pkg/result"
)

// Collection operaciones CRUD sobre una entidad. Los fallos esperados se devuelven
// en la rama ok=false del Result, nunca como panic.
type Collection[T any] interface {
	List(ctx context.Context) result.Result[[]T]
	Add(ctx context.Context, item T) result.Result[T]
	Update(ctx context.Context, id string, patch entity.Patch) result.Result[T]
	// Delete devuelve el id eliminado. Borrar un id inexistente no es un error.
	Delete(ctx context.Context, id string) result.Result[string]
}

// DataAdapter conjunto de colecciones del ERP. Se elige una implementación al arrancar.
type DataAdapter interface {
	Mode() Mode
	Partners() Collection[entity.Partner]
	Products() Collection[entity.Product]
	Orders() Collection[entity.Order]
	Inventory() Collection[entity.InventoryItem]
	PurchaseOrders() Collection[entity.PurchaseOrder]
	SalesOrders() Collection[entity.SalesOrder]
	Machines() Collection[entity.Machine]
	Customers() Collection[entity.Customer]
	Suppliers() Collection[entity.Supplier]
	Employees() Collection[entity.Employee]
	ProductionOrders() Collection[entity.ProductionOrder]
	QualityControls() Collection[entity.QualityControl]
	Warehouses() Collection[entity.Warehouse]
	AccountingEntries() Collection[entity.AccountingEntry]
	Projects() Collection[entity.Project]
	Formulations() Collection[entity.Formulation]
	BOMs() Collection[entity.BOM]
}

// Mode implementación de DataAdapter seleccionada por configuración.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeAPI  Mode = "api"
)

// ParseMode interpreta el valor de configuración. Vacío equivale a mock.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeMock:
		return ModeMock, nil
	case ModeAPI:
		return ModeAPI, nil
	}
	return "", fmt.Errorf("adaptador de datos desconocido %q (valores: mock, api)", s)
}
