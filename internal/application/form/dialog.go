// Package form implementa el comportamiento de datos de los diálogos de alta y edición:
// un borrador local sembrado desde el registro (o con valores por defecto), edición de
// líneas con recálculo del total y envío al store.
package form

import (
	"fmt"
	"time"

	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// Clock fuente de la hora actual (inyectable en tests).
type Clock func() time.Time

// Sink destino del envío; *store.Set[T] lo cumple.
type Sink[T entity.Entity[T]] interface {
	Add(draft T) T
	Update(id string, patch entity.Patch) (T, bool)
}

// Dialog borrador de un registro. En modo edición conserva el id del registro original.
type Dialog[T entity.Entity[T]] struct {
	draft   T
	editing bool
	after   func(*T)
}

// Create diálogo de alta con el borrador inicial dado.
func Create[T entity.Entity[T]](defaults T) *Dialog[T] {
	return &Dialog[T]{draft: defaults}
}

// Edit diálogo de edición sembrado desde un registro existente.
func Edit[T entity.Entity[T]](existing T) *Dialog[T] {
	return &Dialog[T]{draft: existing, editing: true}
}

// Editing true si el diálogo edita un registro existente.
func (d *Dialog[T]) Editing() bool { return d.editing }

// Draft copia del borrador actual.
func (d *Dialog[T]) Draft() T { return d.draft }

// Set modifica campos del borrador. El id no se puede cambiar.
func (d *Dialog[T]) Set(fn func(*T)) {
	id := d.draft.GetID()
	fn(&d.draft)
	if d.draft.GetID() != id {
		d.draft = d.draft.WithID(id)
	}
	if d.after != nil {
		d.after(&d.draft)
	}
}

// Validate límites mínimos del borrador: campos requeridos y cantidades no negativas.
func (d *Dialog[T]) Validate() error {
	return Validate(d.draft)
}

// Submit valida y envía: alta → Add, edición → Update con todos los campos del borrador.
func (d *Dialog[T]) Submit(sink Sink[T]) (T, error) {
	var zero T
	if err := d.Validate(); err != nil {
		return zero, err
	}
	if !d.editing {
		return sink.Add(d.draft), nil
	}
	patch, err := entity.PatchFrom(d.draft)
	if err != nil {
		return zero, fmt.Errorf("form: %w", err)
	}
	updated, ok := sink.Update(d.draft.GetID(), patch)
	if !ok {
		return zero, fmt.Errorf("%s %s: %w", d.draft.Kind().Name, d.draft.GetID(), domain.ErrNotFound)
	}
	return updated, nil
}
