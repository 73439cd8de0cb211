package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/application/store"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/api"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/fixtures"
)

// ──────────────────────────────────────────────────────────────────────────────
// Adaptador API contra el backend REST real
// ──────────────────────────────────────────────────────────────────────────────

func newAPIAdapter(t *testing.T) *api.Adapter {
	t.Helper()
	srv := httptest.NewServer(adaptor.FiberApp(buildTestApp(t)))
	t.Cleanup(srv.Close)
	return api.NewAdapter(api.NewClient(srv.URL + "/api"))
}

func TestE2E_AdaptadorCRUD(t *testing.T) {
	a := newAPIAdapter(t)
	ctx := context.Background()
	products := a.Products()

	list := products.List(ctx)
	require.True(t, list.OK)
	assert.Len(t, list.Data, len(fixtures.MustLoad().Products))

	added := products.Add(ctx, entity.Product{ID: "prd-e2e", Name: "Pintura base", Price: decimal.NewFromInt(32000), Stock: 5, ReorderPoint: 10})
	require.True(t, added.OK)
	assert.Equal(t, "prd-e2e", added.Data.ID)

	updated := products.Update(ctx, "prd-e2e", entity.Patch{"stock": 0})
	require.True(t, updated.OK)
	assert.Equal(t, 0, updated.Data.Stock)
	assert.Equal(t, "Pintura base", updated.Data.Name)

	deleted := products.Delete(ctx, "prd-e2e")
	require.True(t, deleted.OK)
	assert.Equal(t, "prd-e2e", deleted.Data)

	missing := products.Update(ctx, "prd-e2e", entity.Patch{"stock": 1})
	require.False(t, missing.OK)
	status, ok := missing.Error.Code.Status()
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"code": "NOT_FOUND", "message": "product prd-e2e no encontrado"}, missing.Error.Details)
}

func TestE2E_StoreSobreAPI(t *testing.T) {
	a := newAPIAdapter(t)
	s := store.New(a)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Load(ctx))
	assert.Equal(t, len(fixtures.MustLoad().Warehouses), s.Warehouses().Len())

	wh := s.Warehouses().Add(entity.Warehouse{Name: "Bodega puerto", Status: entity.WarehouseActive})
	s.Wait()

	remote := a.Warehouses().List(ctx)
	require.True(t, remote.OK)
	var names []string
	for _, w := range remote.Data {
		if w.ID == wh.ID {
			names = append(names, w.Name)
		}
	}
	assert.Equal(t, []string{"Bodega puerto"}, names)
}
