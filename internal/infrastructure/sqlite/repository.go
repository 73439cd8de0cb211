package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/repository"
)

var _ repository.RecordRepository[entity.Product] = (*Repository[entity.Product])(nil)

// Repository implementa RecordRepository para una entidad sobre la tabla records.
type Repository[T entity.Entity[T]] struct {
	db   *sql.DB
	kind string
}

// NewRepository repositorio de T sobre la base d.
func NewRepository[T entity.Entity[T]](d *DB) *Repository[T] {
	return &Repository[T]{db: d.db, kind: entity.KindOf[T]().Name}
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM records WHERE kind = ? ORDER BY seq`, r.kind)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listar %s: %w", r.kind, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("sqlite: scan %s: %w", r.kind, err)
		}
		var item T
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("sqlite: decodificar %s: %w", r.kind, err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// GetByID devuelve (nil, nil) si no existe.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM records WHERE kind = ? AND id = ?`, r.kind, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: obtener %s %s: %w", r.kind, id, err)
	}
	var item T
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("sqlite: decodificar %s: %w", r.kind, err)
	}
	return &item, nil
}

func (r *Repository[T]) Create(ctx context.Context, item T) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("sqlite: serializar %s: %w", r.kind, err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO records (kind, id, payload) VALUES (?, ?, ?)`, r.kind, item.GetID(), payload)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s %s: %w", r.kind, item.GetID(), domain.ErrDuplicate)
		}
		return fmt.Errorf("sqlite: insertar %s: %w", r.kind, err)
	}
	return nil
}

func (r *Repository[T]) Update(ctx context.Context, item T) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("sqlite: serializar %s: %w", r.kind, err)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE records SET payload = ? WHERE kind = ? AND id = ?`, payload, r.kind, item.GetID())
	if err != nil {
		return fmt.Errorf("sqlite: actualizar %s: %w", r.kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: actualizar %s: %w", r.kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", r.kind, item.GetID(), domain.ErrNotFound)
	}
	return nil
}

// Delete no falla si el registro no existe.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE kind = ? AND id = ?`, r.kind, id); err != nil {
		return fmt.Errorf("sqlite: eliminar %s: %w", r.kind, err)
	}
	return nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE kind = ?`, r.kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: contar %s: %w", r.kind, err)
	}
	return n, nil
}

// isUniqueViolation el driver reporta SQLITE_CONSTRAINT_UNIQUE en el texto del error.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
