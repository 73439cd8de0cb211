// Package storage elige la persistencia del backend REST (memory, sqlite o postgres)
// y arma los repositorios de todas las entidades sobre ella.
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/repository"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/fixtures"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/memory"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/postgres"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/sqlite"
	"github.com/jhoicas/erp-manufactura/pkg/config"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
)

// Backend persistencia abierta. Cerrar con Close.
type Backend struct {
	driver string
	repos  usecase.Repositories
	sqlite *sqlite.DB
	pool   *pgxpool.Pool
}

// Open abre el driver configurado. En postgres crea el esquema si falta.
func Open(ctx context.Context, cfg config.Config) (*Backend, error) {
	b := &Backend{driver: cfg.Storage.Driver}
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		b.repos = memoryRepositories()
	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.sqlite = db
		b.repos = sqliteRepositories(db)
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		b.pool = pool
		b.repos = postgresRepositories(pool)
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
	return b, nil
}

// NewMemory backend en memoria, sin configuración. Útil en pruebas.
func NewMemory() *Backend {
	return &Backend{driver: config.StorageMemory, repos: memoryRepositories()}
}

// Driver nombre del driver en uso.
func (b *Backend) Driver() string { return b.driver }

// Repositories repositorios de todas las entidades.
func (b *Backend) Repositories() usecase.Repositories { return b.repos }

// Close libera conexiones.
func (b *Backend) Close() error {
	if b.pool != nil {
		b.pool.Close()
	}
	if b.sqlite != nil {
		return b.sqlite.Close()
	}
	return nil
}

// Seed carga los datos semilla en las entidades vacías. En postgres todo ocurre en una
// sola transacción; en los demás drivers cada entidad se siembra en paralelo.
func (b *Backend) Seed(ctx context.Context, set fixtures.Set, log *logger.Logger) error {
	if b.pool != nil {
		runner := postgres.NewTxRunner(b.pool)
		return runner.Run(ctx, func(q postgres.Querier) error {
			return seedAll(ctx, usecase.NewRecords(postgresRepositories(q)), set, log, 1)
		})
	}
	return seedAll(ctx, usecase.NewRecords(b.repos), set, log, 0)
}

func seedAll(ctx context.Context, recs *usecase.Records, set fixtures.Set, log *logger.Logger, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	seed(ctx, g, recs.Partners, set.Partners, log)
	seed(ctx, g, recs.Products, set.Products, log)
	seed(ctx, g, recs.Orders, set.Orders, log)
	seed(ctx, g, recs.Inventory, set.Inventory, log)
	seed(ctx, g, recs.PurchaseOrders, set.PurchaseOrders, log)
	seed(ctx, g, recs.SalesOrders, set.SalesOrders, log)
	seed(ctx, g, recs.Machines, set.Machines, log)
	seed(ctx, g, recs.Customers, set.Customers, log)
	seed(ctx, g, recs.Suppliers, set.Suppliers, log)
	seed(ctx, g, recs.Employees, set.Employees, log)
	seed(ctx, g, recs.ProductionOrders, set.ProductionOrders, log)
	seed(ctx, g, recs.QualityControls, set.QualityControls, log)
	seed(ctx, g, recs.Warehouses, set.Warehouses, log)
	seed(ctx, g, recs.AccountingEntries, set.AccountingEntries, log)
	seed(ctx, g, recs.Projects, set.Projects, log)
	seed(ctx, g, recs.Formulations, set.Formulations, log)
	seed(ctx, g, recs.BOMs, set.BOMs, log)
	return g.Wait()
}

func seed[T entity.Entity[T]](ctx context.Context, g *errgroup.Group, uc *usecase.RecordUseCase[T], items []T, log *logger.Logger) {
	g.Go(func() error {
		n, err := uc.Seed(ctx, items)
		if err != nil {
			return err
		}
		if n > 0 {
			log.Debug().Str("entity", uc.Kind().Name).Int("records", n).Msg("datos semilla cargados")
		}
		return nil
	})
}

func memoryRepositories() usecase.Repositories {
	return usecase.Repositories{
		Partners:          memory.NewRepository[entity.Partner](nil),
		Products:          memory.NewRepository[entity.Product](nil),
		Orders:            memory.NewRepository[entity.Order](nil),
		Inventory:         memory.NewRepository[entity.InventoryItem](nil),
		PurchaseOrders:    memory.NewRepository[entity.PurchaseOrder](nil),
		SalesOrders:       memory.NewRepository[entity.SalesOrder](nil),
		Machines:          memory.NewRepository[entity.Machine](nil),
		Customers:         memory.NewRepository[entity.Customer](nil),
		Suppliers:         memory.NewRepository[entity.Supplier](nil),
		Employees:         memory.NewRepository[entity.Employee](nil),
		ProductionOrders:  memory.NewRepository[entity.ProductionOrder](nil),
		QualityControls:   memory.NewRepository[entity.QualityControl](nil),
		Warehouses:        memory.NewRepository[entity.Warehouse](nil),
		AccountingEntries: memory.NewRepository[entity.AccountingEntry](nil),
		Projects:          memory.NewRepository[entity.Project](nil),
		Formulations:      memory.NewRepository[entity.Formulation](nil),
		BOMs:              memory.NewRepository[entity.BOM](nil),
	}
}

func sqliteRepositories(db *sqlite.DB) usecase.Repositories {
	return usecase.Repositories{
		Partners:          sqlite.NewRepository[entity.Partner](db),
		Products:          sqlite.NewRepository[entity.Product](db),
		Orders:            sqlite.NewRepository[entity.Order](db),
		Inventory:         sqlite.NewRepository[entity.InventoryItem](db),
		PurchaseOrders:    sqlite.NewRepository[entity.PurchaseOrder](db),
		SalesOrders:       sqlite.NewRepository[entity.SalesOrder](db),
		Machines:          sqlite.NewRepository[entity.Machine](db),
		Customers:         sqlite.NewRepository[entity.Customer](db),
		Suppliers:         sqlite.NewRepository[entity.Supplier](db),
		Employees:         sqlite.NewRepository[entity.Employee](db),
		ProductionOrders:  sqlite.NewRepository[entity.ProductionOrder](db),
		QualityControls:   sqlite.NewRepository[entity.QualityControl](db),
		Warehouses:        sqlite.NewRepository[entity.Warehouse](db),
		AccountingEntries: sqlite.NewRepository[entity.AccountingEntry](db),
		Projects:          sqlite.NewRepository[entity.Project](db),
		Formulations:      sqlite.NewRepository[entity.Formulation](db),
		BOMs:              sqlite.NewRepository[entity.BOM](db),
	}
}

func postgresRepositories(q postgres.Querier) usecase.Repositories {
	return usecase.Repositories{
		Partners:          postgres.NewRecordRepository[entity.Partner](q),
		Products:          postgres.NewRecordRepository[entity.Product](q),
		Orders:            postgres.NewRecordRepository[entity.Order](q),
		Inventory:         postgres.NewRecordRepository[entity.InventoryItem](q),
		PurchaseOrders:    postgres.NewRecordRepository[entity.PurchaseOrder](q),
		SalesOrders:       postgres.NewRecordRepository[entity.SalesOrder](q),
		Machines:          postgres.NewRecordRepository[entity.Machine](q),
		Customers:         postgres.NewRecordRepository[entity.Customer](q),
		Suppliers:         postgres.NewRecordRepository[entity.Supplier](q),
		Employees:         postgres.NewRecordRepository[entity.Employee](q),
		ProductionOrders:  postgres.NewRecordRepository[entity.ProductionOrder](q),
		QualityControls:   postgres.NewRecordRepository[entity.QualityControl](q),
		Warehouses:        postgres.NewRecordRepository[entity.Warehouse](q),
		AccountingEntries: postgres.NewRecordRepository[entity.AccountingEntry](q),
		Projects:          postgres.NewRecordRepository[entity.Project](q),
		Formulations:      postgres.NewRecordRepository[entity.Formulation](q),
		BOMs:              postgres.NewRecordRepository[entity.BOM](q),
	}
}

// compile-time: los tres drivers cumplen el puerto.
var (
	_ repository.RecordRepository[entity.Partner] = (*memory.Repository[entity.Partner])(nil)
	_ repository.RecordRepository[entity.Partner] = (*sqlite.Repository[entity.Partner])(nil)
	_ repository.RecordRepository[entity.Partner] = (*postgres.RecordRepo[entity.Partner])(nil)
)
