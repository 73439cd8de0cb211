package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// RecordRepository define el puerto de persistencia del backend REST para una entidad (DIP).
// GetByID devuelve (nil, nil) cuando el registro no existe; Update devuelve domain.ErrNotFound.
type RecordRepository[T entity.Entity[T]] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// AmountSummer capacidad opcional: suma en la base un campo monetario del payload
// (por ejemplo "totalAmount"). Los repositorios que no la implementan se suman en memoria.
type AmountSummer interface {
	SumAmount(ctx context.Context, field string) (decimal.Decimal, error)
}
