// Package mock implementa DataAdapter sobre arreglos en memoria sembrados con los fixtures.
// Cada operación espera una latencia artificial antes de mutar; las operaciones nunca fallan.
package mock

import (
	"context"
	"time"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/fixtures"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/memory"
	"github.com/jhoicas/erp-manufactura/pkg/result"
)

// DefaultDelay latencia simulada por operación.
const DefaultDelay = 200 * time.Millisecond

var _ adapter.DataAdapter = (*Adapter)(nil)

// Adapter adaptador mock: un arreglo mutable por entidad.
// Cada instancia tiene su propio almacén (no hay estado global de paquete).
type Adapter struct {
	partners          *collection[entity.Partner]
	products          *collection[entity.Product]
	orders            *collection[entity.Order]
	inventory         *collection[entity.InventoryItem]
	purchaseOrders    *collection[entity.PurchaseOrder]
	salesOrders       *collection[entity.SalesOrder]
	machines          *collection[entity.Machine]
	customers         *collection[entity.Customer]
	suppliers         *collection[entity.Supplier]
	employees         *collection[entity.Employee]
	productionOrders  *collection[entity.ProductionOrder]
	qualityControls   *collection[entity.QualityControl]
	warehouses        *collection[entity.Warehouse]
	accountingEntries *collection[entity.AccountingEntry]
	projects          *collection[entity.Project]
	formulations      *collection[entity.Formulation]
	boms              *collection[entity.BOM]
}

type options struct {
	delay time.Duration
	seed  *fixtures.Set
}

// Option configura el adaptador mock.
type Option func(*options)

// WithDelay cambia la latencia simulada (0 = sin espera).
func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithFixtures siembra con datos propios en lugar del YAML embebido.
func WithFixtures(s fixtures.Set) Option {
	return func(o *options) { o.seed = &s }
}

// New construye el adaptador mock.
func New(opts ...Option) *Adapter {
	o := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&o)
	}
	seed := fixtures.MustLoad()
	if o.seed != nil {
		seed = *o.seed
	}
	d := o.delay
	return &Adapter{
		partners:          newCollection(seed.Partners, d),
		products:          newCollection(seed.Products, d),
		orders:            newCollection(seed.Orders, d),
		inventory:         newCollection(seed.Inventory, d),
		purchaseOrders:    newCollection(seed.PurchaseOrders, d),
		salesOrders:       newCollection(seed.SalesOrders, d),
		machines:          newCollection(seed.Machines, d),
		customers:         newCollection(seed.Customers, d),
		suppliers:         newCollection(seed.Suppliers, d),
		employees:         newCollection(seed.Employees, d),
		productionOrders:  newCollection(seed.ProductionOrders, d),
		qualityControls:   newCollection(seed.QualityControls, d),
		warehouses:        newCollection(seed.Warehouses, d),
		accountingEntries: newCollection(seed.AccountingEntries, d),
		projects:          newCollection(seed.Projects, d),
		formulations:      newCollection(seed.Formulations, d),
		boms:              newCollection(seed.BOMs, d),
	}
}

func (a *Adapter) Mode() adapter.Mode { return adapter.ModeMock }

func (a *Adapter) Partners() adapter.Collection[entity.Partner] { return a.partners }
func (a *Adapter) Products() adapter.Collection[entity.Product] { return a.products }
func (a *Adapter) Orders() adapter.Collection[entity.Order] { return a.orders }
func (a *Adapter) Machines() adapter.Collection[entity.Machine] { return a.machines }
func (a *Adapter) Projects() adapter.Collection[entity.Project] { return a.projects }
func (a *Adapter) BOMs() adapter.Collection[entity.BOM] { return a.boms }
func (a *Adapter) Customers() adapter.Collection[entity.Customer] { return a.customers }
func (a *Adapter) Suppliers() adapter.Collection[entity.Supplier] { return a.suppliers }
func (a *Adapter) Employees() adapter.Collection[entity.Employee] { return a.employees }

func (a *Adapter) Inventory() adapter.Collection[entity.InventoryItem] { return a.inventory }

func (a *Adapter) PurchaseOrders() adapter.Collection[entity.PurchaseOrder] {
	return a.purchaseOrders
}

func (a *Adapter) SalesOrders() adapter.Collection[entity.SalesOrder] { return a.salesOrders }

func (a *Adapter) ProductionOrders() adapter.Collection[entity.ProductionOrder] {
	return a.productionOrders
}

func (a *Adapter) QualityControls() adapter.Collection[entity.QualityControl] {
	return a.qualityControls
}

func (a *Adapter) Warehouses() adapter.Collection[entity.Warehouse] { return a.warehouses }

func (a *Adapter) AccountingEntries() adapter.Collection[entity.AccountingEntry] {
	return a.accountingEntries
}

func (a *Adapter) Formulations() adapter.Collection[entity.Formulation] { return a.formulations }

// collection implementa adapter.Collection sobre memory.Collection con latencia simulada.
type collection[T entity.Entity[T]] struct {
	data  *memory.Collection[T]
	delay time.Duration
}

func newCollection[T entity.Entity[T]](seed []T, delay time.Duration) *collection[T] {
	return &collection[T]{data: memory.NewCollection(seed), delay: delay}
}

// wait simula la latencia. Solo la cancelación del contexto interrumpe la operación.
func (c *collection[T]) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *collection[T]) List(ctx context.Context) result.Result[[]T] {
	if err := c.wait(ctx); err != nil {
		return result.Canceled[[]T](err.Error())
	}
	return result.Ok(c.data.List())
}

func (c *collection[T]) Add(ctx context.Context, item T) result.Result[T] {
	if err := c.wait(ctx); err != nil {
		return result.Canceled[T](err.Error())
	}
	return result.Ok(c.data.Insert(item))
}

// Update fusiona el patch. Un id inexistente devuelve ok con el registro vacío y no toca el almacén.
func (c *collection[T]) Update(ctx context.Context, id string, patch entity.Patch) result.Result[T] {
	if err := c.wait(ctx); err != nil {
		return result.Canceled[T](err.Error())
	}
	updated, _, err := c.data.Patch(id, patch)
	if err != nil {
		// Un patch que no encaja en el tipo no se aplica; el mock no reporta fallos.
		current, _ := c.data.Get(id)
		return result.Ok(current)
	}
	return result.Ok(updated)
}

func (c *collection[T]) Delete(ctx context.Context, id string) result.Result[string] {
	if err := c.wait(ctx); err != nil {
		return result.Canceled[string](err.Error())
	}
	c.data.Remove(id)
	return result.Ok(id)
}
