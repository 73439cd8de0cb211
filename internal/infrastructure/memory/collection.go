// Package memory provee la colección en memoria que respaldan tanto el adaptador mock
// como el backend REST en modo "memory".
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/repository"
)

// Collection arreglo mutable de registros de una entidad, en orden de inserción.
// Es seguro para uso concurrente.
type Collection[T entity.Entity[T]] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection crea la colección con una copia de seed.
func NewCollection[T entity.Entity[T]](seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items}
}

// List devuelve una copia del contenido.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len cantidad de registros.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get busca por id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Insert agrega al final. Si el registro no trae id se le asigna uno nuevo.
func (c *Collection[T]) Insert(item T) T {
	if item.GetID() == "" {
		item = item.WithID(entity.NewID())
	}
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	return item
}

// InsertIfAbsent agrega al final solo si no hay otro registro con el mismo id.
// La verificación y el append ocurren bajo el mismo lock.
func (c *Collection[T]) InsertIfAbsent(item T) (T, bool) {
	if item.GetID() == "" {
		item = item.WithID(entity.NewID())
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(item.GetID()) >= 0 {
		return item, false
	}
	c.items = append(c.items, item)
	return item, true
}

// Patch fusiona patch sobre el registro con ese id. ok=false si no existe.
func (c *Collection[T]) Patch(id string, patch entity.Patch) (updated T, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return updated, false, nil
	}
	updated, err = entity.ApplyPatch(c.items[i], patch)
	if err != nil {
		return updated, true, err
	}
	c.items[i] = updated
	return updated, true, nil
}

// Replace sustituye el registro con el mismo id. Devuelve false si no existe.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(item.GetID())
	if i < 0 {
		return false
	}
	c.items[i] = item
	return true
}

// Reset reemplaza todo el contenido por una copia de items.
func (c *Collection[T]) Reset(items []T) {
	fresh := make([]T, len(items))
	copy(fresh, items)
	c.mu.Lock()
	c.items = fresh
	c.mu.Unlock()
}

// Remove filtra el registro con ese id. Devuelve false si no existía (no es un error).
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0:0]
	for _, it := range c.items {
		if it.GetID() != id {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(c.items)
	c.items = kept
	return removed
}

func (c *Collection[T]) indexOf(id string) int {
	for i, it := range c.items {
		if it.GetID() == id {
			return i
		}
	}
	return -1
}

var _ repository.RecordRepository[entity.Product] = (*Repository[entity.Product])(nil)

// Repository implementación del puerto RecordRepository sobre una Collection.
type Repository[T entity.Entity[T]] struct {
	c *Collection[T]
}

// NewRepository construye el repositorio en memoria.
func NewRepository[T entity.Entity[T]](seed []T) *Repository[T] {
	return &Repository[T]{c: NewCollection(seed)}
}

func (r *Repository[T]) List(_ context.Context) ([]T, error) { return r.c.List(), nil }

func (r *Repository[T]) GetByID(_ context.Context, id string) (*T, error) {
	it, ok := r.c.Get(id)
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *Repository[T]) Create(_ context.Context, item T) error {
	if _, ok := r.c.InsertIfAbsent(item); !ok {
		return domain.ErrDuplicate
	}
	return nil
}

func (r *Repository[T]) Update(_ context.Context, item T) error {
	if !r.c.Replace(item) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Delete(_ context.Context, id string) error {
	r.c.Remove(id)
	return nil
}

func (r *Repository[T]) Count(_ context.Context) (int, error) { return r.c.Len(), nil }
