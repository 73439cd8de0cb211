package usecase

import (
	"context"

	"github.com/jhoicas/erp-manufactura/internal/application/dto"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/repository"
)

// Repositories un repositorio por entidad; lo arma la capa de persistencia elegida.
type Repositories struct {
	Partners          repository.RecordRepository[entity.Partner]
	Products          repository.RecordRepository[entity.Product]
	Orders            repository.RecordRepository[entity.Order]
	Inventory         repository.RecordRepository[entity.InventoryItem]
	PurchaseOrders    repository.RecordRepository[entity.PurchaseOrder]
	SalesOrders       repository.RecordRepository[entity.SalesOrder]
	Machines          repository.RecordRepository[entity.Machine]
	Customers         repository.RecordRepository[entity.Customer]
	Suppliers         repository.RecordRepository[entity.Supplier]
	Employees         repository.RecordRepository[entity.Employee]
	ProductionOrders  repository.RecordRepository[entity.ProductionOrder]
	QualityControls   repository.RecordRepository[entity.QualityControl]
	Warehouses        repository.RecordRepository[entity.Warehouse]
	AccountingEntries repository.RecordRepository[entity.AccountingEntry]
	Projects          repository.RecordRepository[entity.Project]
	Formulations      repository.RecordRepository[entity.Formulation]
	BOMs              repository.RecordRepository[entity.BOM]
}

// Records casos de uso CRUD de todas las entidades.
type Records struct {
	Partners          *RecordUseCase[entity.Partner]
	Products          *RecordUseCase[entity.Product]
	Orders            *RecordUseCase[entity.Order]
	Inventory         *RecordUseCase[entity.InventoryItem]
	PurchaseOrders    *RecordUseCase[entity.PurchaseOrder]
	SalesOrders       *RecordUseCase[entity.SalesOrder]
	Machines          *RecordUseCase[entity.Machine]
	Customers         *RecordUseCase[entity.Customer]
	Suppliers         *RecordUseCase[entity.Supplier]
	Employees         *RecordUseCase[entity.Employee]
	ProductionOrders  *RecordUseCase[entity.ProductionOrder]
	QualityControls   *RecordUseCase[entity.QualityControl]
	Warehouses        *RecordUseCase[entity.Warehouse]
	AccountingEntries *RecordUseCase[entity.AccountingEntry]
	Projects          *RecordUseCase[entity.Project]
	Formulations      *RecordUseCase[entity.Formulation]
	BOMs              *RecordUseCase[entity.BOM]
}

// NewRecords construye un caso de uso por repositorio.
func NewRecords(r Repositories) *Records {
	return &Records{
		Partners:          NewRecordUseCase(r.Partners),
		Products:          NewRecordUseCase(r.Products),
		Orders:            NewRecordUseCase(r.Orders),
		Inventory:         NewRecordUseCase(r.Inventory),
		PurchaseOrders:    NewRecordUseCase(r.PurchaseOrders),
		SalesOrders:       NewRecordUseCase(r.SalesOrders),
		Machines:          NewRecordUseCase(r.Machines),
		Customers:         NewRecordUseCase(r.Customers),
		Suppliers:         NewRecordUseCase(r.Suppliers),
		Employees:         NewRecordUseCase(r.Employees),
		ProductionOrders:  NewRecordUseCase(r.ProductionOrders),
		QualityControls:   NewRecordUseCase(r.QualityControls),
		Warehouses:        NewRecordUseCase(r.Warehouses),
		AccountingEntries: NewRecordUseCase(r.AccountingEntries),
		Projects:          NewRecordUseCase(r.Projects),
		Formulations:      NewRecordUseCase(r.Formulations),
		BOMs:              NewRecordUseCase(r.BOMs),
	}
}

// Counter lo cumple cada RecordUseCase; permite recorrer las entidades sin conocer T.
type Counter interface {
	Kind() entity.Kind
	Count(ctx context.Context) (int, error)
}

// Counters todas las entidades en el orden de entity.Kinds().
func (r *Records) Counters() []Counter {
	return []Counter{
		r.Partners, r.Products, r.Orders, r.Inventory, r.PurchaseOrders, r.SalesOrders,
		r.Machines, r.Customers, r.Suppliers, r.Employees, r.ProductionOrders,
		r.QualityControls, r.Warehouses, r.AccountingEntries, r.Projects,
		r.Formulations, r.BOMs,
	}
}

// Counts registros por ruta de entidad.
func (r *Records) Counts(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int, len(entity.Kinds()))
	for _, c := range r.Counters() {
		n, err := c.Count(ctx)
		if err != nil {
			return nil, err
		}
		out[c.Kind().Path] = n
	}
	return out, nil
}

// Totals montos acumulados de órdenes y costo de BOMs.
func (r *Records) Totals(ctx context.Context) (dto.TotalsResponse, error) {
	var (
		out dto.TotalsResponse
		err error
	)
	if out.Orders, err = r.Orders.SumAmount(ctx, "totalAmount"); err != nil {
		return out, err
	}
	if out.PurchaseOrders, err = r.PurchaseOrders.SumAmount(ctx, "totalAmount"); err != nil {
		return out, err
	}
	if out.SalesOrders, err = r.SalesOrders.SumAmount(ctx, "totalAmount"); err != nil {
		return out, err
	}
	if out.BOMCost, err = r.BOMs.SumAmount(ctx, "totalCost"); err != nil {
		return out, err
	}
	return out, nil
}
