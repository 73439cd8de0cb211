package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/repository"
)

var (
	_ repository.RecordRepository[entity.Product] = (*RecordRepo[entity.Product])(nil)
	_ repository.AmountSummer                     = (*RecordRepo[entity.Product])(nil)
)

// RecordRepo implementación del puerto RecordRepository sobre la tabla erp_records.
type RecordRepo[T entity.Entity[T]] struct {
	q    Querier
	kind string
}

// NewRecordRepository construye el repositorio de T sobre un pool o una transacción.
func NewRecordRepository[T entity.Entity[T]](q Querier) *RecordRepo[T] {
	return &RecordRepo[T]{q: q, kind: entity.KindOf[T]().Name}
}

// List registros de la entidad en orden de inserción.
func (r *RecordRepo[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.q.Query(ctx, `SELECT payload FROM erp_records WHERE kind = $1 ORDER BY seq`, r.kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.kind, err)
		}
		var item T
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.kind, err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// GetByID obtiene un registro por ID. (nil, nil) si no existe.
func (r *RecordRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var payload []byte
	err := r.q.QueryRow(ctx, `SELECT payload FROM erp_records WHERE kind = $1 AND id = $2`, r.kind, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.kind, err)
	}
	var item T
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.kind, err)
	}
	return &item, nil
}

// Create persiste un registro nuevo.
func (r *RecordRepo[T]) Create(ctx context.Context, item T) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.kind, err)
	}
	_, err = r.q.Exec(ctx, `INSERT INTO erp_records (kind, id, payload) VALUES ($1, $2, $3)`, r.kind, item.GetID(), payload)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s %s: %w", r.kind, item.GetID(), domain.ErrDuplicate)
		}
		return fmt.Errorf("insert %s: %w", r.kind, err)
	}
	return nil
}

// Update reemplaza el payload de un registro existente.
func (r *RecordRepo[T]) Update(ctx context.Context, item T) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.kind, err)
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE erp_records SET payload = $3, updated_at = now() WHERE kind = $1 AND id = $2`,
		r.kind, item.GetID(), payload)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.kind, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", r.kind, item.GetID(), domain.ErrNotFound)
	}
	return nil
}

// Delete elimina el registro; no falla si no existe.
func (r *RecordRepo[T]) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM erp_records WHERE kind = $1 AND id = $2`, r.kind, id); err != nil {
		return fmt.Errorf("delete %s: %w", r.kind, err)
	}
	return nil
}

// Count cantidad de registros de la entidad.
func (r *RecordRepo[T]) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM erp_records WHERE kind = $1`, r.kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.kind, err)
	}
	return n, nil
}

// SumAmount suma un campo decimal del payload como NUMERIC; el resultado llega como
// decimal.Decimal por el codec registrado en NewPool.
func (r *RecordRepo[T]) SumAmount(ctx context.Context, field string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM((payload->>($2::text))::numeric), 0) FROM erp_records WHERE kind = $1`,
		r.kind, field,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum %s.%s: %w", r.kind, field, err)
	}
	return total, nil
}

// isUniqueViolation el (kind, id) ya existe en erp_records (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
