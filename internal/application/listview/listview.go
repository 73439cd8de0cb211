// Package listview implementa el comportamiento de datos de las vistas de listado:
// búsqueda de texto libre y filtro por categoría, sin mutar la colección de origen.
package listview

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// All valor del filtro que no restringe.
const All = "all"

// Query estado de una vista: texto de búsqueda y faceta seleccionada.
type Query struct {
	Search string
	Facet  string
}

// Search coincidencia por subcadena sin distinguir mayúsculas sobre SearchTerms().
// Consulta vacía devuelve todo. Conserva el orden.
func Search[T entity.Entity[T]](items []T, query string) []T {
	if query == "" {
		return clone(items)
	}
	// cases.Caser tiene estado: uno por llamada.
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, term := range it.SearchTerms() {
			if term != "" && strings.Contains(fold.String(term), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Filter igualdad exacta sobre Facet(). Vacío o "all" devuelve todo.
func Filter[T entity.Entity[T]](items []T, facet string) []T {
	if facet == "" || facet == All {
		return clone(items)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.Facet() == facet {
			out = append(out, it)
		}
	}
	return out
}

// Apply compone filtro y búsqueda.
func Apply[T entity.Entity[T]](items []T, q Query) []T {
	return Search(Filter(items, q.Facet), q.Search)
}

// Facets valores distintos de faceta presentes en items, ordenados. Alimenta el selector de filtro.
func Facets[T entity.Entity[T]](items []T) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, it := range items {
		f := it.Facet()
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
