package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-manufactura/internal/infrastructure/api"
	"github.com/jhoicas/erp-manufactura/pkg/result"
)

// roundTripFunc permite simular transportes sin red.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// neverResolves bloquea hasta que el contexto de la petición termine.
func neverResolves() *http.Client {
	return &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()
		return nil, r.Context().Err()
	})}
}

// ──────────────────────────────────────────────────────────────────────────────
// Timeout
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_Timeout_TransporteSinRespuesta(t *testing.T) {
	c := api.NewClient("http://erp.invalid/api",
		api.WithTimeout(50*time.Millisecond),
		api.WithHTTPClient(neverResolves()),
	)

	start := time.Now()
	r := c.Get(context.Background(), "/products")
	elapsed := time.Since(start)

	require.False(t, r.OK)
	require.NotNil(t, r.Error)
	assert.Equal(t, result.CodeTimeout, r.Error.Code.Symbol())
	assert.True(t, r.Error.Retryable)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, time.Second)
}

func TestClient_CancelacionDelLlamador(t *testing.T) {
	c := api.NewClient("http://erp.invalid/api",
		api.WithTimeout(time.Minute),
		api.WithHTTPClient(neverResolves()),
	)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	r := c.Get(ctx, "/products")
	require.False(t, r.OK)
	assert.Equal(t, result.CodeCanceled, r.Error.Code.Symbol())
}

// ──────────────────────────────────────────────────────────────────────────────
// Respuestas HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_Status404_DetallesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"msg":"not found"}`))
	}))
	defer srv.Close()

	r := api.NewClient(srv.URL).Get(context.Background(), "/products/x")

	require.False(t, r.OK)
	status, ok := r.Error.Code.Status()
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"msg": "not found"}, r.Error.Details)
	assert.False(t, r.Error.Retryable)
}

func TestClient_Status500_DetallesTexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := api.NewClient(srv.URL).Get(context.Background(), "/products")

	require.False(t, r.OK)
	status, _ := r.Error.Code.Status()
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", r.Error.Details)
}

func TestClient_EnviaJSON(t *testing.T) {
	var gotMethod, gotPath, gotCT string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotCT = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"id":"p1","name":"Tornillo"}`))
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL + "/api/")
	r := api.Request[map[string]any](context.Background(), c, http.MethodPost, "products", map[string]any{"name": "Tornillo"})

	require.True(t, r.OK)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/products", gotPath)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, "Tornillo", gotBody["name"])
	assert.Equal(t, "p1", r.Data["id"])
}

func TestClient_CuerpoVacio_ValorCero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	r := api.Request[map[string]any](context.Background(), api.NewClient(srv.URL), http.MethodDelete, "/x/1", nil)
	require.True(t, r.OK)
	assert.Nil(t, r.Data)
}

func TestClient_JSONMalformado_ErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	r := api.NewClient(srv.URL).Get(context.Background(), "/products")
	require.False(t, r.OK)
	assert.Equal(t, result.CodeNetworkError, r.Error.Code.Symbol())
	assert.True(t, r.Error.Retryable)
}

func TestClient_ServidorCaido_ErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	r := api.NewClient(url, api.WithTimeout(2*time.Second)).Get(context.Background(), "/products")
	require.False(t, r.OK)
	assert.Equal(t, result.CodeNetworkError, r.Error.Code.Symbol())
	assert.True(t, r.Error.Retryable)
	assert.NotEmpty(t, r.Error.Message)
}

func TestClient_TimeoutPorDefecto(t *testing.T) {
	assert.Equal(t, api.DefaultTimeout, api.NewClient("http://x").Timeout())
	assert.Equal(t, api.DefaultTimeout, api.NewClient("http://x", api.WithTimeout(0)).Timeout())
}
