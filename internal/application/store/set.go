package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/application/listview"
	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/memory"
	"github.com/jhoicas/erp-manufactura/pkg/result"
)

// Operaciones registradas en logs y métricas.
const (
	OpLoad   = "load"
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
)

// DynamicSet acceso a una colección por nombre, a nivel JSON (CLI, herramientas).
type DynamicSet interface {
	Kind() entity.Kind
	Len() int
	Facets() []string
	ListJSON(q listview.Query) ([]byte, error)
	GetJSON(id string) ([]byte, bool, error)
	AddJSON(body []byte) ([]byte, error)
	UpdateJSON(id string, body []byte) ([]byte, bool, error)
	Delete(id string) bool
}

var _ DynamicSet = (*Set[entity.Product])(nil)

// Set estado local de una entidad. Las mutaciones se aplican de inmediato y se
// propagan al adaptador en segundo plano; un fallo remoto no revierte el estado local.
type Set[T entity.Entity[T]] struct {
	kind   entity.Kind
	local  *memory.Collection[T]
	remote adapter.Collection[T]
	sync   *syncer
}

func newSet[T entity.Entity[T]](remote adapter.Collection[T], s *syncer) *Set[T] {
	return &Set[T]{
		kind:   entity.KindOf[T](),
		local:  memory.NewCollection[T](nil),
		remote: remote,
		sync:   s,
	}
}

func (s *Set[T]) Kind() entity.Kind { return s.kind }

// All copia del estado local.
func (s *Set[T]) All() []T { return s.local.List() }

func (s *Set[T]) Len() int { return s.local.Len() }

func (s *Set[T]) Get(id string) (T, bool) { return s.local.Get(id) }

// Query estado local filtrado como lo muestra una vista de listado.
func (s *Set[T]) Query(q listview.Query) []T { return listview.Apply(s.local.List(), q) }

// Facets valores de faceta presentes en el estado local.
func (s *Set[T]) Facets() []string { return listview.Facets(s.local.List()) }

// Add asigna id, agrega al final y devuelve el registro creado.
func (s *Set[T]) Add(draft T) T {
	created := s.local.Insert(draft)
	s.sync.dispatch(s.kind.Name, OpAdd, created, func(ctx context.Context) *result.ErrorInfo {
		return failure(s.remote.Add(ctx, created))
	})
	return created
}

// Update fusión superficial del patch. ok=false si el id no está en el estado local;
// aun así el cambio se envía al adaptador.
func (s *Set[T]) Update(id string, patch entity.Patch) (T, bool) {
	updated, ok, err := s.update(id, patch)
	if err != nil {
		s.sync.log.Warn().
			Str("entity", s.kind.Name).
			Str("operation", OpUpdate).
			Str("id", id).
			Err(err).
			Msg("patch inválido, no se aplica")
		return updated, false
	}
	return updated, ok
}

func (s *Set[T]) update(id string, patch entity.Patch) (T, bool, error) {
	updated, ok, err := s.local.Patch(id, patch)
	if err != nil {
		current, _ := s.local.Get(id)
		return current, false, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s.sync.dispatch(s.kind.Name, OpUpdate, patch, func(ctx context.Context) *result.ErrorInfo {
		return failure(s.remote.Update(ctx, id, patch))
	})
	return updated, ok, nil
}

// Delete quita el registro. Devuelve false si no estaba; el adaptador recibe la orden igual.
func (s *Set[T]) Delete(id string) bool {
	removed := s.local.Remove(id)
	s.sync.dispatch(s.kind.Name, OpDelete, id, func(ctx context.Context) *result.ErrorInfo {
		return failure(s.remote.Delete(ctx, id))
	})
	return removed
}

// load reemplaza el estado local con el listado del adaptador. Si falla, el estado no cambia.
func (s *Set[T]) load(ctx context.Context) error {
	r := s.remote.List(ctx)
	if info := failure(r); info != nil {
		s.sync.warn(s.kind.Name, OpLoad, nil, info)
		s.sync.metrics.observe(s.kind.Name, OpLoad, OutcomeFailure)
		return fmt.Errorf("%s: %w", s.kind.Path, info)
	}
	s.local.Reset(r.Data)
	s.sync.metrics.observe(s.kind.Name, OpLoad, OutcomeSuccess)
	return nil
}

func (s *Set[T]) ListJSON(q listview.Query) ([]byte, error) {
	return json.Marshal(s.Query(q))
}

func (s *Set[T]) GetJSON(id string) ([]byte, bool, error) {
	item, ok := s.local.Get(id)
	if !ok {
		return nil, false, nil
	}
	b, err := json.Marshal(item)
	return b, true, err
}

func (s *Set[T]) AddJSON(body []byte) ([]byte, error) {
	var draft T
	if err := json.Unmarshal(body, &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return json.Marshal(s.Add(draft))
}

func (s *Set[T]) UpdateJSON(id string, body []byte) ([]byte, bool, error) {
	patch, err := entity.DecodePatch(body)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	updated, ok, err := s.update(id, patch)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	b, err := json.Marshal(updated)
	return b, true, err
}

// failure extrae el error de un Result fallido.
func failure[T any](r result.Result[T]) *result.ErrorInfo {
	if r.OK {
		return nil
	}
	if r.Error == nil {
		return &result.ErrorInfo{Code: result.SymbolCode("unknown"), Message: "resultado fallido sin error"}
	}
	return r.Error
}
