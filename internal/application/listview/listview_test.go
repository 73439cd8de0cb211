package listview_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/erp-manufactura/internal/application/listview"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func products() []entity.Product {
	return []entity.Product{
		{ID: "p1", Code: "RES-001", Name: "Resina Epóxica", Category: "materia-prima", Price: decimal.NewFromInt(100)},
		{ID: "p2", Code: "ACI-002", Name: "ÁCIDO cítrico", Category: "materia-prima"},
		{ID: "p3", Code: "ENV-010", Name: "Envase 1L", Category: "empaque", Description: "Envase PET resina reciclada"},
		{ID: "p4", Code: "PT-100", Name: "Adhesivo industrial", Category: "producto-terminado"},
	}
}

func idsOf(items []entity.Product) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestSearch_SinDistinguirMayusculas(t *testing.T) {
	got := listview.Search(products(), "RESINA")
	if diff := cmp.Diff([]string{"p1", "p3"}, idsOf(got)); diff != "" {
		t.Errorf("Search (-want +got):\n%s", diff)
	}
}

func TestSearch_UnicodeFolding(t *testing.T) {
	got := listview.Search(products(), "ácido")
	assert.Equal(t, []string{"p2"}, idsOf(got))
}

func TestSearch_EspaciosSonParteDeLaConsulta(t *testing.T) {
	assert.Empty(t, listview.Search(products(), "  "))
	assert.Equal(t, []string{"p3"}, idsOf(listview.Search(products(), "e 1")))
}

func TestSearch_PorCodigo(t *testing.T) {
	got := listview.Search(products(), "pt-1")
	assert.Equal(t, []string{"p4"}, idsOf(got))
}

func TestSearch_VaciaDevuelveTodo(t *testing.T) {
	in := products()
	got := listview.Search(in, "")
	if diff := cmp.Diff(in, got, decimalEqual); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got[0].Name = "mutado"
	assert.Equal(t, "Resina Epóxica", in[0].Name, "no debe compartir el arreglo de origen")
}

func TestSearch_SinCoincidencias(t *testing.T) {
	got := listview.Search(products(), "zzz")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter(t *testing.T) {
	cases := []struct {
		facet string
		want  []string
	}{
		{"", []string{"p1", "p2", "p3", "p4"}},
		{listview.All, []string{"p1", "p2", "p3", "p4"}},
		{"materia-prima", []string{"p1", "p2"}},
		{"empaque", []string{"p3"}},
		{"inexistente", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.facet, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, idsOf(listview.Filter(products(), tc.facet))); diff != "" {
				t.Errorf("Filter(%q) (-want +got):\n%s", tc.facet, diff)
			}
		})
	}
}

func TestApply_ComponeFiltroYBusqueda(t *testing.T) {
	got := listview.Apply(products(), listview.Query{Search: "resina", Facet: "materia-prima"})
	assert.Equal(t, []string{"p1"}, idsOf(got))
}

func TestFilter_EmpleadosPorDepartamento(t *testing.T) {
	emps := []entity.Employee{
		{ID: "e1", FirstName: "Ana", LastName: "Gómez", Department: "produccion"},
		{ID: "e2", FirstName: "Luis", LastName: "Pérez", Department: "calidad"},
	}
	got := listview.Filter(emps, "calidad")
	assert.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].ID)
}

func TestFacets(t *testing.T) {
	assert.Equal(t, []string{"empaque", "materia-prima", "producto-terminado"}, listview.Facets(products()))
}
