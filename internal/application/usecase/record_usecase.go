package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/repository"
)

// RecordUseCase casos de uso CRUD genéricos del backend REST para una entidad.
type RecordUseCase[T entity.Entity[T]] struct {
	repo repository.RecordRepository[T]
}

// NewRecordUseCase construye el caso de uso.
func NewRecordUseCase[T entity.Entity[T]](repo repository.RecordRepository[T]) *RecordUseCase[T] {
	return &RecordUseCase[T]{repo: repo}
}

// Kind entidad que gestiona.
func (uc *RecordUseCase[T]) Kind() entity.Kind { return entity.KindOf[T]() }

// List todos los registros en orden de inserción.
func (uc *RecordUseCase[T]) List(ctx context.Context) ([]T, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un registro. (nil, nil) si no existe.
func (uc *RecordUseCase[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create persiste el registro. Respeta el id enviado por el cliente (el store lo asigna
// localmente antes de sincronizar); si viene vacío se genera uno.
func (uc *RecordUseCase[T]) Create(ctx context.Context, in T) (*T, error) {
	if in.GetID() == "" {
		in = in.WithID(entity.NewID())
	}
	if err := uc.repo.Create(ctx, in); err != nil {
		return nil, err
	}
	return &in, nil
}

// Update fusión superficial del patch sobre el registro. (nil, nil) si no existe.
func (uc *RecordUseCase[T]) Update(ctx context.Context, id string, patch entity.Patch) (*T, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	updated, err := entity.ApplyPatch(*current, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina el registro. Borrar un id inexistente no es un error.
func (uc *RecordUseCase[T]) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Count cantidad de registros.
func (uc *RecordUseCase[T]) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

// SumAmount suma un campo decimal (clave JSON, ej. "totalAmount") de todos los registros.
// Delega en la base cuando el repositorio sabe sumar; si no, suma en memoria.
func (uc *RecordUseCase[T]) SumAmount(ctx context.Context, field string) (decimal.Decimal, error) {
	if s, ok := uc.repo.(repository.AmountSummer); ok {
		return s.SumAmount(ctx, field)
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range items {
		raw, err := json.Marshal(it)
		if err != nil {
			return decimal.Zero, err
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return decimal.Zero, err
		}
		v, ok := fields[field]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %s no tiene el campo %q", domain.ErrInvalidInput, uc.Kind().Name, field)
		}
		var d decimal.Decimal
		if err := json.Unmarshal(v, &d); err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s.%s no es decimal: %v", domain.ErrInvalidInput, uc.Kind().Name, field, err)
		}
		total = total.Add(d)
	}
	return total, nil
}

// Seed inserta items solo si la colección está vacía. Devuelve cuántos insertó.
func (uc *RecordUseCase[T]) Seed(ctx context.Context, items []T) (int, error) {
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for _, it := range items {
		if _, err := uc.Create(ctx, it); err != nil {
			return 0, fmt.Errorf("seed %s: %w", uc.Kind().Name, err)
		}
	}
	return len(items), nil
}
