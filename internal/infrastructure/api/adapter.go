package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/pkg/result"
)

var _ adapter.DataAdapter = (*Adapter)(nil)

// Adapter DataAdapter remoto: cada entidad se mapea a /{path} y /{path}/{id}.
//
//	List   GET    /{path}
//	Add    POST   /{path}
//	Update PUT    /{path}/{id}
//	Delete DELETE /{path}/{id}
type Adapter struct {
	client *Client
}

// NewAdapter construye el adaptador sobre un cliente ya configurado.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// Client cliente subyacente.
func (a *Adapter) Client() *Client { return a.client }

func (a *Adapter) Mode() adapter.Mode { return adapter.ModeAPI }

func (a *Adapter) Partners() adapter.Collection[entity.Partner] {
	return newCollection[entity.Partner](a.client)
}

func (a *Adapter) Products() adapter.Collection[entity.Product] {
	return newCollection[entity.Product](a.client)
}

func (a *Adapter) Orders() adapter.Collection[entity.Order] {
	return newCollection[entity.Order](a.client)
}

func (a *Adapter) Inventory() adapter.Collection[entity.InventoryItem] {
	return newCollection[entity.InventoryItem](a.client)
}

func (a *Adapter) PurchaseOrders() adapter.Collection[entity.PurchaseOrder] {
	return newCollection[entity.PurchaseOrder](a.client)
}

func (a *Adapter) SalesOrders() adapter.Collection[entity.SalesOrder] {
	return newCollection[entity.SalesOrder](a.client)
}

func (a *Adapter) Machines() adapter.Collection[entity.Machine] {
	return newCollection[entity.Machine](a.client)
}

func (a *Adapter) Customers() adapter.Collection[entity.Customer] {
	return newCollection[entity.Customer](a.client)
}

func (a *Adapter) Suppliers() adapter.Collection[entity.Supplier] {
	return newCollection[entity.Supplier](a.client)
}

func (a *Adapter) Employees() adapter.Collection[entity.Employee] {
	return newCollection[entity.Employee](a.client)
}

func (a *Adapter) ProductionOrders() adapter.Collection[entity.ProductionOrder] {
	return newCollection[entity.ProductionOrder](a.client)
}

func (a *Adapter) QualityControls() adapter.Collection[entity.QualityControl] {
	return newCollection[entity.QualityControl](a.client)
}

func (a *Adapter) Warehouses() adapter.Collection[entity.Warehouse] {
	return newCollection[entity.Warehouse](a.client)
}

func (a *Adapter) AccountingEntries() adapter.Collection[entity.AccountingEntry] {
	return newCollection[entity.AccountingEntry](a.client)
}

func (a *Adapter) Projects() adapter.Collection[entity.Project] {
	return newCollection[entity.Project](a.client)
}

func (a *Adapter) Formulations() adapter.Collection[entity.Formulation] {
	return newCollection[entity.Formulation](a.client)
}

func (a *Adapter) BOMs() adapter.Collection[entity.BOM] {
	return newCollection[entity.BOM](a.client)
}

type collection[T entity.Entity[T]] struct {
	client *Client
	path   string
}

func newCollection[T entity.Entity[T]](c *Client) *collection[T] {
	return &collection[T]{client: c, path: "/" + entity.KindOf[T]().Path}
}

func (c *collection[T]) itemPath(id string) string {
	return c.path + "/" + url.PathEscape(id)
}

func (c *collection[T]) List(ctx context.Context) result.Result[[]T] {
	r := Request[[]T](ctx, c.client, http.MethodGet, c.path, nil)
	if r.OK && r.Data == nil {
		r.Data = []T{}
	}
	return r
}

func (c *collection[T]) Add(ctx context.Context, item T) result.Result[T] {
	return Request[T](ctx, c.client, http.MethodPost, c.path, item)
}

func (c *collection[T]) Update(ctx context.Context, id string, patch entity.Patch) result.Result[T] {
	return Request[T](ctx, c.client, http.MethodPut, c.itemPath(id), patch)
}

// Delete el servidor puede responder 204 sin cuerpo; el resultado exitoso lleva el id.
func (c *collection[T]) Delete(ctx context.Context, id string) result.Result[string] {
	r := c.client.Delete(ctx, c.itemPath(id))
	if !r.OK {
		return result.Result[string]{Error: r.Error}
	}
	return result.Ok(id)
}
