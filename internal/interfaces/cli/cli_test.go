package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/application/adapter"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/mock"
	"github.com/jhoicas/erp-manufactura/internal/interfaces/cli"
	"github.com/jhoicas/erp-manufactura/pkg/config"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
	"github.com/jhoicas/erp-manufactura/pkg/result"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// run ejecuta erpctl contra un mock sin latencia compartido entre llamadas.
func run(t *testing.T, m *mock.Adapter, args ...string) (string, string, error) {
	t.Helper()
	return runWith(t, m, args...)
}

func runWith(t *testing.T, da adapter.DataAdapter, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(cli.Options{
		Out: &out,
		Err: &errOut,
		NewAdapter: func(config.AdapterConfig, *logger.Logger) (adapter.DataAdapter, error) {
			return da, nil
		},
		LoadConfig: func() (*config.Config, error) {
			return &config.Config{App: config.AppConfig{Env: "production"}, Log: config.LogConfig{Level: "warn"}}, nil
		},
	})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func newMock() *mock.Adapter { return mock.New(mock.WithDelay(0)) }

// ──────────────────────────────────────────────────────────────────────────────
// Lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestEntities_ListaLas17(t *testing.T) {
	out, _, err := run(t, newMock(), "entities")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(entity.Kinds()))
	assert.Contains(t, out, "purchase-orders")
}

func TestList_BusquedaYFaceta(t *testing.T) {
	m := newMock()

	out, _, err := run(t, m, "list", "machines", "--facet", "maintenance")
	require.NoError(t, err)
	var machines []entity.Machine
	require.NoError(t, json.Unmarshal([]byte(out), &machines))
	require.Len(t, machines, 1)
	assert.Equal(t, "mac-2", machines[0].ID)

	out, _, err = run(t, m, "list", "products", "--search", "RESINA")
	require.NoError(t, err)
	var products []entity.Product
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "prd-3", products[0].ID)
}

func TestList_EntidadDesconocida(t *testing.T) {
	_, _, err := run(t, newMock(), "list", "facturas")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "facturas")
}

func TestGet_YAML(t *testing.T) {
	out, _, err := run(t, newMock(), "get", "warehouse", "wh-1", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "id: wh-1")
}

func TestGet_NoEncontrado(t *testing.T) {
	_, _, err := run(t, newMock(), "get", "warehouses", "nope")
	assert.Error(t, err)
}

func TestOutput_FormatoDesconocido(t *testing.T) {
	_, _, err := run(t, newMock(), "entities", "-o", "xml")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones: el CLI espera la sincronización antes de terminar
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_LlegaAlAdaptador(t *testing.T) {
	m := newMock()

	out, _, err := run(t, m, "add", "suppliers", `{"name":"Tornillos del Norte"}`)
	require.NoError(t, err)
	var created entity.Supplier
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.NotEmpty(t, created.ID)

	r := m.Suppliers().List(context.Background())
	require.True(t, r.OK)
	last := r.Data[len(r.Data)-1]
	assert.Equal(t, created.ID, last.ID)
	assert.Equal(t, "Tornillos del Norte", last.Name)
}

func TestUpdate_Fusiona(t *testing.T) {
	m := newMock()

	_, _, err := run(t, m, "update", "products", "prd-2", `{"stock":30}`)
	require.NoError(t, err)

	r := m.Products().List(context.Background())
	require.True(t, r.OK)
	for _, p := range r.Data {
		if p.ID == "prd-2" {
			assert.Equal(t, 30, p.Stock)
			assert.Equal(t, "Eje de transmisión", p.Name)
		}
	}
}

func TestUpdate_JSONInvalido(t *testing.T) {
	_, _, err := run(t, newMock(), "update", "products", "prd-2", `{`)
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	m := newMock()

	out, _, err := run(t, m, "delete", "boms", "bom-1")
	require.NoError(t, err)
	assert.Contains(t, out, "eliminado: true")

	r := m.BOMs().List(context.Background())
	require.True(t, r.OK)
	for _, b := range r.Data {
		assert.NotEqual(t, "bom-1", b.ID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_Badges(t *testing.T) {
	out, _, err := run(t, newMock(), "stock")
	require.NoError(t, err)

	assert.Contains(t, out, "Resina epóxica")
	assert.Contains(t, out, "out-of-stock")
	assert.Contains(t, out, "low-stock")
	assert.Contains(t, out, "available")
}

func TestStock_SoloBajos(t *testing.T) {
	out, _, err := run(t, newMock(), "stock", "--low")
	require.NoError(t, err)

	assert.NotContains(t, out, "Carcasa de aluminio")
	assert.Contains(t, out, "Eje de transmisión")
}

func TestReplenish_Prioridad(t *testing.T) {
	out, _, err := run(t, newMock(), "replenish")
	require.NoError(t, err)

	var list []struct {
		ProductID string `json:"productId"`
		Priority  int    `json:"priority"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Priority)
}

// slowProducts productos cuyo Update tarda y cuenta las sincronizaciones terminadas.
type slowProducts struct {
	adapter.Collection[entity.Product]
	done atomic.Int32
}

func (p *slowProducts) Update(ctx context.Context, id string, patch entity.Patch) result.Result[entity.Product] {
	time.Sleep(150 * time.Millisecond)
	defer p.done.Add(1)
	return p.Collection.Update(ctx, id, patch)
}

type slowAdapter struct {
	*mock.Adapter
	products *slowProducts
}

func (a *slowAdapter) Products() adapter.Collection[entity.Product] { return a.products }

func TestUpdate_ConErrorIgualEsperaLaSincronizacion(t *testing.T) {
	m := newMock()
	products := &slowProducts{Collection: m.Products()}
	da := &slowAdapter{Adapter: m, products: products}

	_, _, err := runWith(t, da, "update", "products", "solo-remoto", `{"stock":1}`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encontrado")
	assert.Equal(t, int32(1), products.done.Load(), "el PUT despachado termina antes de volver")
}

func TestUpdate_ExitosoEsperaLaSincronizacion(t *testing.T) {
	m := newMock()
	products := &slowProducts{Collection: m.Products()}
	da := &slowAdapter{Adapter: m, products: products}

	_, _, err := runWith(t, da, "update", "products", "prd-1", `{"stock":1}`)

	require.NoError(t, err)
	assert.Equal(t, int32(1), products.done.Load())
}
