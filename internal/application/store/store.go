// Package store es el contexto de datos de la aplicación: mantiene una copia local de cada
// colección y la sincroniza con el DataAdapter de forma optimista.
//
// Las mutaciones (Add, Update, Delete) se aplican al estado local antes de devolver y la
// llamada al adaptador corre en una goroutine rastreada. Un resultado fallido o un panic del
// adaptador se registran como advertencia; no hay rollback, reintento ni recarga. Por eso el
// estado local y el remoto pueden divergir hasta el próximo Load.
package store

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
	"github.com/jhoicas/erp-manufactura/pkg/result"
)

// Store contexto de datos con un Set por entidad.
type Store struct {
	adapter  adapter.DataAdapter
	sync     *syncer
	registry map[string]DynamicSet
	loaders  []func(context.Context) error

	partners          *Set[entity.Partner]
	products          *Set[entity.Product]
	orders            *Set[entity.Order]
	inventory         *Set[entity.InventoryItem]
	purchaseOrders    *Set[entity.PurchaseOrder]
	salesOrders       *Set[entity.SalesOrder]
	machines          *Set[entity.Machine]
	customers         *Set[entity.Customer]
	suppliers         *Set[entity.Supplier]
	employees         *Set[entity.Employee]
	productionOrders  *Set[entity.ProductionOrder]
	qualityControls   *Set[entity.QualityControl]
	warehouses        *Set[entity.Warehouse]
	accountingEntries *Set[entity.AccountingEntry]
	projects          *Set[entity.Project]
	formulations      *Set[entity.Formulation]
	boms              *Set[entity.BOM]
}

type options struct {
	log     *logger.Logger
	metrics *Metrics
}

// Option configura el store.
type Option func(*options)

// WithLogger logger para advertencias de sincronización.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics contadores de sincronización (por defecto sin registrar).
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New crea el store con colecciones vacías. Llamar Load para sembrarlas.
func New(a adapter.DataAdapter, opts ...Option) *Store {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	if o.metrics == nil {
		o.metrics = NewMetrics(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sy := &syncer{ctx: ctx, cancel: cancel, log: o.log, metrics: o.metrics}

	s := &Store{adapter: a, sync: sy, registry: make(map[string]DynamicSet)}
	s.partners = register(s, a.Partners())
	s.products = register(s, a.Products())
	s.orders = register(s, a.Orders())
	s.inventory = register(s, a.Inventory())
	s.purchaseOrders = register(s, a.PurchaseOrders())
	s.salesOrders = register(s, a.SalesOrders())
	s.machines = register(s, a.Machines())
	s.customers = register(s, a.Customers())
	s.suppliers = register(s, a.Suppliers())
	s.employees = register(s, a.Employees())
	s.productionOrders = register(s, a.ProductionOrders())
	s.qualityControls = register(s, a.QualityControls())
	s.warehouses = register(s, a.Warehouses())
	s.accountingEntries = register(s, a.AccountingEntries())
	s.projects = register(s, a.Projects())
	s.formulations = register(s, a.Formulations())
	s.boms = register(s, a.BOMs())
	return s
}

func register[T entity.Entity[T]](s *Store, remote adapter.Collection[T]) *Set[T] {
	set := newSet(remote, s.sync)
	s.registry[set.kind.Name] = set
	s.registry[set.kind.Path] = set
	s.loaders = append(s.loaders, set.load)
	return set
}

// Load trae todas las colecciones en paralelo. Una colección que falla queda como estaba
// y no impide cargar las demás; se devuelve el primer error.
func (s *Store) Load(ctx context.Context) error {
	var g errgroup.Group
	for _, load := range s.loaders {
		g.Go(func() error { return load(ctx) })
	}
	return g.Wait()
}

// Wait bloquea hasta que terminen las sincronizaciones en curso.
func (s *Store) Wait() { s.sync.wg.Wait() }

// Close cancela las sincronizaciones pendientes y espera a que terminen.
// Las mutaciones posteriores solo afectan el estado local.
func (s *Store) Close() {
	s.sync.mu.Lock()
	s.sync.closed = true
	s.sync.mu.Unlock()
	s.sync.cancel()
	s.sync.wg.Wait()
}

// Mode modo del adaptador subyacente.
func (s *Store) Mode() adapter.Mode { return s.adapter.Mode() }

// Lookup colección por nombre lógico ("purchase-order") o ruta ("purchase-orders").
func (s *Store) Lookup(name string) (DynamicSet, bool) {
	set, ok := s.registry[name]
	return set, ok
}

// Names rutas de todas las colecciones, ordenadas.
func (s *Store) Names() []string {
	out := make([]string, 0, len(entity.Kinds()))
	for _, k := range entity.Kinds() {
		out = append(out, k.Path)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Partners() *Set[entity.Partner] { return s.partners }
func (s *Store) Products() *Set[entity.Product] { return s.products }
func (s *Store) Orders() *Set[entity.Order] { return s.orders }
func (s *Store) Inventory() *Set[entity.InventoryItem] { return s.inventory }
func (s *Store) PurchaseOrders() *Set[entity.PurchaseOrder] { return s.purchaseOrders }
func (s *Store) SalesOrders() *Set[entity.SalesOrder] { return s.salesOrders }
func (s *Store) Machines() *Set[entity.Machine] { return s.machines }
func (s *Store) Customers() *Set[entity.Customer] { return s.customers }
func (s *Store) Suppliers() *Set[entity.Supplier] { return s.suppliers }
func (s *Store) Employees() *Set[entity.Employee] { return s.employees }
func (s *Store) ProductionOrders() *Set[entity.ProductionOrder] { return s.productionOrders }
func (s *Store) QualityControls() *Set[entity.QualityControl] { return s.qualityControls }
func (s *Store) Warehouses() *Set[entity.Warehouse] { return s.warehouses }
func (s *Store) AccountingEntries() *Set[entity.AccountingEntry] {
	return s.accountingEntries
}
func (s *Store) Projects() *Set[entity.Project] { return s.projects }
func (s *Store) Formulations() *Set[entity.Formulation] { return s.formulations }
func (s *Store) BOMs() *Set[entity.BOM] { return s.boms }

// syncer despacha las llamadas al adaptador en goroutines rastreadas.
type syncer struct {
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	closed  bool
	wg      sync.WaitGroup
	log     *logger.Logger
	metrics *Metrics
}

func (s *syncer) dispatch(entityName, op string, payload any, call func(context.Context) *result.ErrorInfo) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.metrics.observe(entityName, op, OutcomeSkipped)
		s.log.Warn().Str("entity", entityName).Str("operation", op).Msg("store cerrado, cambio solo local")
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.metrics.observe(entityName, op, OutcomePanic)
				s.log.Warn().
					Str("entity", entityName).
					Str("operation", op).
					Interface("payload", payload).
					Interface("panic", r).
					Msg("sincronización con el adaptador falló")
			}
		}()

		if info := call(s.ctx); info != nil {
			s.metrics.observe(entityName, op, OutcomeFailure)
			s.warn(entityName, op, payload, info)
			return
		}
		s.metrics.observe(entityName, op, OutcomeSuccess)
	}()
}

func (s *syncer) warn(entityName, op string, payload any, info *result.ErrorInfo) {
	ev := s.log.Warn().
		Str("entity", entityName).
		Str("operation", op).
		Str("code", info.Code.String()).
		Bool("retryable", info.Retryable)
	if payload != nil {
		ev = ev.Interface("payload", payload)
	}
	if info.Details != nil {
		ev = ev.Interface("details", info.Details)
	}
	ev.Msg("sincronización con el adaptador falló: " + info.Message)
}
