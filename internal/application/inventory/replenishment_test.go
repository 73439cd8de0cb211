package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/erp-manufactura/internal/application/inventory"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/domain/inventory"
)

func product(id string, stock, reorder int, price, cost int64) entity.Product {
	return entity.Product{
		ID: id, Name: id, Stock: stock, ReorderPoint: reorder,
		Price: decimal.NewFromInt(price), Cost: decimal.NewFromInt(cost),
		Status: entity.ProductActive,
	}
}

func TestReplenishment_SoloBajoReorden(t *testing.T) {
	discontinued := product("d", 0, 10, 100, 50)
	discontinued.Status = entity.ProductDiscontinued

	out := appinventory.Replenishment([]entity.Product{
		product("ok", 120, 40, 100, 50),
		product("bajo", 8, 25, 100, 50),
		discontinued,
	})

	require.Len(t, out, 1)
	assert.Equal(t, "bajo", out[0].ProductID)
	assert.Equal(t, inventory.LowStock, out[0].Status)
	assert.Equal(t, 30, out[0].SuggestedOrderQty) // ⌈37.5⌉ - 8
	assert.True(t, decimal.NewFromInt(1500).Equal(out[0].EstimatedOrderCost))
	assert.True(t, decimal.NewFromInt(50).Equal(out[0].GrossMarginPct))
}

func TestReplenishment_PrioridadPorMargenYDeficit(t *testing.T) {
	out := appinventory.Replenishment([]entity.Product{
		product("margen-bajo", 0, 10, 100, 90),
		product("deficit-chico", 9, 10, 100, 50),
		product("deficit-grande", 0, 50, 100, 50),
	})

	require.Len(t, out, 3)
	assert.Equal(t, []string{"deficit-grande", "deficit-chico", "margen-bajo"},
		[]string{out[0].ProductID, out[1].ProductID, out[2].ProductID})
	assert.Equal(t, []int{1, 2, 3}, []int{out[0].Priority, out[1].Priority, out[2].Priority})
}

func TestReplenishment_PrecioCeroSinMargen(t *testing.T) {
	out := appinventory.Replenishment([]entity.Product{product("gratis", 0, 4, 0, 10)})

	require.Len(t, out, 1)
	assert.True(t, out[0].GrossMarginPct.IsZero())
	assert.Equal(t, inventory.OutOfStock, out[0].Status)
}
