package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/application/dto"
	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/fixtures"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/pdf"
	"github.com/jhoicas/erp-manufactura/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/erp-manufactura/internal/interfaces/http"
	"github.com/jhoicas/erp-manufactura/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp backend en memoria sembrado con los fixtures, igual que cmd/api.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	backend := storage.NewMemory()
	require.NoError(t, backend.Seed(context.Background(), fixtures.MustLoad(), logger.Nop()))

	repos := backend.Repositories()
	reg := prometheus.NewRegistry()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Records:  usecase.NewRecords(repos),
		OrderPDF: usecase.NewOrderPDFUseCase(repos.PurchaseOrders, repos.SalesOrders, pdf.NewOrderPDFGenerator("Manufacturas ERP")),
		Storage:  backend.Driver(),
		Metrics:  apphttp.NewMetrics(reg),
		Gatherer: reg,
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD genérico
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ListaDevuelveArregloPlano(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/products", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]entity.Product](t, resp)
	assert.Len(t, list, len(fixtures.MustLoad().Products))
}

func TestRouter_TodasLasEntidadesMontadas(t *testing.T) {
	app := buildTestApp(t)
	for _, k := range entity.Kinds() {
		resp := doRequest(t, app, http.MethodGet, "/api/"+k.Path, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, k.Path)
	}
}

func TestRouter_GetByID(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/machines/mac-1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "mac-1", decode[entity.Machine](t, resp).ID)

	resp = doRequest(t, app, http.MethodGet, "/api/machines/nope", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_CreateRespetaIDYRechazaDuplicado(t *testing.T) {
	app := buildTestApp(t)
	body := `{"id":"wh-9","code":"BOD-9","name":"Bodega sur","status":"active"}`

	resp := doRequest(t, app, http.MethodPost, "/api/warehouses", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "wh-9", decode[entity.Warehouse](t, resp).ID)

	resp = doRequest(t, app, http.MethodPost, "/api/warehouses", body)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_CreateSinIDGeneraUno(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/warehouses", `{"name":"Bodega este"}`)

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, decode[entity.Warehouse](t, resp).ID)
}

func TestRouter_CreateCuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/warehouses", `{`)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_UpdateFusionSuperficial(t *testing.T) {
	app := buildTestApp(t)
	before := decode[entity.Product](t, doRequest(t, app, http.MethodGet, "/api/products/prd-1", ""))

	resp := doRequest(t, app, http.MethodPut, "/api/products/prd-1", `{"stock":3}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	after := decode[entity.Product](t, resp)
	assert.Equal(t, 3, after.Stock)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, "prd-1", after.ID)
}

func TestRouter_UpdateInexistenteEs404(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPut, "/api/products/nope", `{"stock":3}`)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRouter_UpdateTipoIncompatibleEs400(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPut, "/api/products/prd-1", `{"stock":"muchos"}`)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_DeleteIdempotente(t *testing.T) {
	app := buildTestApp(t)

	assert.Equal(t, fiber.StatusNoContent, doRequest(t, app, http.MethodDelete, "/api/boms/bom-1", "").StatusCode)
	assert.Equal(t, fiber.StatusNoContent, doRequest(t, app, http.MethodDelete, "/api/boms/bom-1", "").StatusCode)
	assert.Equal(t, fiber.StatusNotFound, doRequest(t, app, http.MethodGet, "/api/boms/bom-1", "").StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF, health y métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_PDFOrdenDeCompra(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/purchase-orders/po-1/pdf", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "PO-2024-014.pdf")
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"))
}

func TestRouter_PDFOrdenInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/sales-orders/nope/pdf", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRouter_Reposicion(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/replenishment", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]map[string]any](t, resp)
	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s["productId"].(string))
	}
	assert.ElementsMatch(t, []string{"prd-2", "prd-3"}, ids)
}

func TestRouter_TotalesCoincidenConFixtures(t *testing.T) {
	app := buildTestApp(t)
	set := fixtures.MustLoad()

	resp := doRequest(t, app, http.MethodGet, "/api/reports/totals", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.TotalsResponse](t, resp)

	want := decimal.Zero
	for _, po := range set.PurchaseOrders {
		want = want.Add(po.TotalAmount)
	}
	assert.True(t, want.Equal(got.PurchaseOrders), "%s != %s", want, got.PurchaseOrders)

	want = decimal.Zero
	for _, so := range set.SalesOrders {
		want = want.Add(so.TotalAmount)
	}
	assert.True(t, want.Equal(got.SalesOrders), "%s != %s", want, got.SalesOrders)

	want = decimal.Zero
	for _, b := range set.BOMs {
		want = want.Add(b.TotalCost)
	}
	assert.True(t, want.Equal(got.BOMCost), "%s != %s", want, got.BOMCost)
	assert.True(t, got.BOMCost.IsPositive())
}

func TestRouter_Health(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	h := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "memory", h.Storage)
	assert.Equal(t, len(fixtures.MustLoad().Formulations), h.Records["formulations"])
}

func TestRouter_MetricsCuentaPorRuta(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodGet, "/api/machines/mac-1", "")

	resp := doRequest(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(b), `erp_http_requests_total{method="GET",route="/api/machines/:id",status="200"} 1`)
}
