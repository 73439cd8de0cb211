package form

import (
	"time"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// Prefijos de los códigos generados al crear.
const (
	PrefixPurchaseOrder   = "PO"
	PrefixSalesOrder      = "SO"
	PrefixProductionOrder = "PRD"
	PrefixQualityControl  = "QC"
	PrefixFormulation     = "FRM"
	PrefixBOM             = "BOM"
)

// Defaults borrador inicial de alta para cualquier entidad: primer estado del ciclo de vida,
// fechas en "ahora", contadores en cero y códigos sellados con el timestamp.
func Defaults[T entity.Entity[T]](now time.Time) T {
	var draft T
	switch d := any(&draft).(type) {
	case *entity.Partner:
		d.Type, d.Status = entity.PartnerCustomer, entity.PartnerActive
	case *entity.Product:
		d.Status = entity.ProductActive
	case *entity.Order:
		d.OrderDate, d.Status = now, entity.OrderPending
	case *entity.InventoryItem:
		d.LastUpdated, d.Status = now, entity.InventoryInStock
	case *entity.PurchaseOrder:
		d.OrderNumber = entity.Stamp(PrefixPurchaseOrder, now)
		d.OrderDate, d.Status = now, entity.PurchaseDraft
		d.Items = []entity.OrderItem{}
	case *entity.SalesOrder:
		d.OrderNumber = entity.Stamp(PrefixSalesOrder, now)
		d.OrderDate, d.Status = now, entity.SalesDraft
		d.Items = []entity.OrderItem{}
	case *entity.Machine:
		d.Status = entity.MachineOperational
	case *entity.Customer:
		d.Status = entity.CustomerActive
	case *entity.Supplier:
		d.Status = entity.SupplierActive
	case *entity.Employee:
		d.HireDate, d.Status = now, entity.EmployeeActive
	case *entity.ProductionOrder:
		d.OrderNumber = entity.Stamp(PrefixProductionOrder, now)
		d.StartDate, d.Priority, d.Status = now, entity.PriorityMedium, entity.ProductionPlanned
	case *entity.QualityControl:
		d.InspectionNumber = entity.Stamp(PrefixQualityControl, now)
		d.InspectionDate, d.Status = now, entity.QualityPending
	case *entity.Warehouse:
		d.Status = entity.WarehouseActive
	case *entity.AccountingEntry:
		d.Date, d.Status = now, entity.AccountingDraft
	case *entity.Project:
		d.StartDate, d.Status = now, entity.ProjectPlanning
	case *entity.Formulation:
		d.Code = entity.Stamp(PrefixFormulation, now)
		d.Version, d.Status = "1.0", entity.FormulationDraft
		d.Ingredients = []entity.Ingredient{}
	case *entity.BOM:
		d.Code = entity.Stamp(PrefixBOM, now)
		d.Version, d.Status = "1.0", entity.BOMDraft
		d.Components = []entity.BOMComponent{}
	}
	return draft
}

// New diálogo de alta con los valores por defecto de T.
func New[T entity.Entity[T]](clock Clock) *Dialog[T] {
	return Create(Defaults[T](clock()))
}

// NewPurchaseOrder alta de orden de compra con número PO-<millis>.
func NewPurchaseOrder(clock Clock) *PurchaseOrderDialog {
	return purchaseOrderDialog(New[entity.PurchaseOrder](clock))
}

// NewSalesOrder alta de orden de venta con número SO-<millis>.
func NewSalesOrder(clock Clock) *SalesOrderDialog {
	return salesOrderDialog(New[entity.SalesOrder](clock))
}

// NewFormulation alta de formulación con código FRM-<millis>.
func NewFormulation(clock Clock) *FormulationDialog {
	return formulationDialog(New[entity.Formulation](clock))
}

// NewBOM alta de lista de materiales con código BOM-<millis>.
func NewBOM(clock Clock) *BOMDialog {
	return bomDialog(New[entity.BOM](clock))
}
