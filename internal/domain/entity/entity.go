// Package entity contiene las formas de datos de cada entidad del ERP de manufactura.
// Son registros planos con id string y un estado cerrado; se serializan en JSON camelCase
// porque ese es el contrato REST que consumen los adaptadores.
package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind identifica un tipo de entidad: nombre lógico y ruta REST (plural).
type Kind struct {
	Name string
	Path string
}

// Entity es la restricción genérica que cumplen todas las entidades.
// T es el propio tipo de la entidad (WithID devuelve una copia con otro id).
type Entity[T any] interface {
	GetID() string
	WithID(id string) T
	Kind() Kind
	// SearchTerms campos de texto sobre los que buscan las vistas de listado.
	SearchTerms() []string
	// Facet valor de la categoría por la que filtran las vistas de listado.
	Facet() string
}

// NewID genera un id derivado del timestamp actual (UUIDv7, ordenable por tiempo).
// A diferencia de un string con milisegundos, dos creaciones en el mismo milisegundo no colisionan.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Kinds lista todas las entidades en el orden en que se exponen.
func Kinds() []Kind {
	return []Kind{
		KindPartner, KindProduct, KindOrder, KindInventoryItem, KindPurchaseOrder, KindSalesOrder,
		KindMachine, KindCustomer, KindSupplier, KindEmployee, KindProductionOrder, KindQualityControl,
		KindWarehouse, KindAccountingEntry, KindProject, KindFormulation, KindBOM,
	}
}

var (
	KindPartner         = Kind{Name: "partner", Path: "partners"}
	KindProduct         = Kind{Name: "product", Path: "products"}
	KindOrder           = Kind{Name: "order", Path: "orders"}
	KindInventoryItem   = Kind{Name: "inventory-item", Path: "inventory"}
	KindPurchaseOrder   = Kind{Name: "purchase-order", Path: "purchase-orders"}
	KindSalesOrder      = Kind{Name: "sales-order", Path: "sales-orders"}
	KindMachine         = Kind{Name: "machine", Path: "machines"}
	KindCustomer        = Kind{Name: "customer", Path: "customers"}
	KindSupplier        = Kind{Name: "supplier", Path: "suppliers"}
	KindEmployee        = Kind{Name: "employee", Path: "employees"}
	KindProductionOrder = Kind{Name: "production-order", Path: "production-orders"}
	KindQualityControl  = Kind{Name: "quality-control", Path: "quality-controls"}
	KindWarehouse       = Kind{Name: "warehouse", Path: "warehouses"}
	KindAccountingEntry = Kind{Name: "accounting-entry", Path: "accounting-entries"}
	KindProject         = Kind{Name: "project", Path: "projects"}
	KindFormulation     = Kind{Name: "formulation", Path: "formulations"}
	KindBOM             = Kind{Name: "bom", Path: "boms"}
)

// KindOf devuelve el Kind de un tipo de entidad sin necesitar una instancia.
func KindOf[T Entity[T]]() Kind {
	var zero T
	return zero.Kind()
}

// Stamp código generado a partir del timestamp: "PO-1700000000000".
func Stamp(prefix string, now time.Time) string {
	return prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
