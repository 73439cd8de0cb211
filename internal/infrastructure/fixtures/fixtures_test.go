package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/fixtures"
)

func TestLoad_TodasLasEntidadesTienenDatos(t *testing.T) {
	s, err := fixtures.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, s.Partners)
	assert.NotEmpty(t, s.Products)
	assert.NotEmpty(t, s.Orders)
	assert.NotEmpty(t, s.Inventory)
	assert.NotEmpty(t, s.PurchaseOrders)
	assert.NotEmpty(t, s.SalesOrders)
	assert.NotEmpty(t, s.Machines)
	assert.NotEmpty(t, s.Customers)
	assert.NotEmpty(t, s.Suppliers)
	assert.NotEmpty(t, s.Employees)
	assert.NotEmpty(t, s.ProductionOrders)
	assert.NotEmpty(t, s.QualityControls)
	assert.NotEmpty(t, s.Warehouses)
	assert.NotEmpty(t, s.AccountingEntries)
	assert.NotEmpty(t, s.Projects)
	assert.NotEmpty(t, s.Formulations)
	assert.NotEmpty(t, s.BOMs)
}

func TestLoad_TiposDecodificados(t *testing.T) {
	s := fixtures.MustLoad()

	p := s.Products[0]
	assert.Equal(t, "prd-1", p.ID)
	assert.Equal(t, "185000", p.Price.String())
	assert.Equal(t, 40, p.ReorderPoint)
	assert.Equal(t, entity.ProductActive, p.Status)

	m := s.Machines[0]
	assert.Equal(t, 87.5, m.Efficiency)
	assert.Equal(t, 2024, m.LastMaintenance.Year())
}

// Los agregados semilla deben coincidir con la suma de sus líneas.
func TestLoad_TotalesConsistentes(t *testing.T) {
	s := fixtures.MustLoad()
	for _, po := range s.PurchaseOrders {
		assert.True(t, entity.SumLines(po.Items).Equal(po.TotalAmount), po.OrderNumber)
	}
	for _, so := range s.SalesOrders {
		assert.True(t, entity.SumLines(so.Items).Equal(so.TotalAmount), so.OrderNumber)
	}
	for _, f := range s.Formulations {
		assert.True(t, entity.SumLines(f.Ingredients).Equal(f.Cost), f.Code)
	}
	for _, b := range s.BOMs {
		assert.True(t, entity.SumLines(b.Components).Equal(b.TotalCost), b.Code)
	}
}

func TestLoad_IDsUnicos(t *testing.T) {
	s := fixtures.MustLoad()
	seen := map[string]bool{}
	for _, p := range s.Products {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestParse_Invalido(t *testing.T) {
	_, err := fixtures.Parse([]byte("products: [ {stock: muchos} ]"))
	assert.Error(t, err)
}
