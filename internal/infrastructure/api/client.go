// Package api implementa el cliente HTTP del ERP y el adaptador DataAdapter que lo usa.
// Todos los fallos se traducen al sobre result.Result: timeout y error de red son reintentables,
// las respuestas HTTP no-2xx no lo son. No hay reintentos ni backoff.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/erp-manufactura/pkg/result"
)

// DefaultTimeout plazo por petición si no se configura otro.
const DefaultTimeout = 10 * time.Second

// maxBody límite de lectura de respuestas.
const maxBody = 16 << 20

// Client envoltorio delgado sobre net/http con timeout y mapeo uniforme de errores.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// ClientOption configura el cliente.
type ClientOption func(*Client)

// WithTimeout cambia el plazo por petición.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient reemplaza el cliente HTTP (tests, transportes propios).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient construye el cliente. baseURL ej. "http://localhost:8080/api".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout plazo configurado.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Get GET path.
func (c *Client) Get(ctx context.Context, path string) result.Result[json.RawMessage] {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post POST path con body JSON.
func (c *Client) Post(ctx context.Context, path string, body any) result.Result[json.RawMessage] {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put PUT path con body JSON.
func (c *Client) Put(ctx context.Context, path string, body any) result.Result[json.RawMessage] {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Delete DELETE path.
func (c *Client) Delete(ctx context.Context, path string) result.Result[json.RawMessage] {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do emite la petición compitiendo contra el timeout. Nunca devuelve error de Go:
// el resultado siempre es un Result (ok o fallo clasificado).
func (c *Client) Do(ctx context.Context, method, path string, body any) result.Result[json.RawMessage] {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return result.NetworkError[json.RawMessage](fmt.Sprintf("serializar body: %v", err))
		}
		payload = b
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// Buffer 1: la goroutine termina aunque ya nadie espere su resultado.
	done := make(chan result.Result[json.RawMessage], 1)
	go func() {
		done <- c.roundTrip(ctx, method, c.url(path), payload)
	}()

	select {
	case r := <-done:
		return r
	case <-ctx.Done():
		return c.contextFailure(ctx)
	}
}

func (c *Client) roundTrip(ctx context.Context, method, url string, payload []byte) result.Result[json.RawMessage] {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return result.NetworkError[json.RawMessage](fmt.Sprintf("crear request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return c.contextFailure(ctx)
		}
		return result.NetworkError[json.RawMessage](err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		if ctx.Err() != nil {
			return c.contextFailure(ctx)
		}
		return result.NetworkError[json.RawMessage](fmt.Sprintf("leer respuesta: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result.HTTPError[json.RawMessage](resp.StatusCode, http.StatusText(resp.StatusCode), errorDetails(raw))
	}
	if len(bytes.TrimSpace(raw)) > 0 && !json.Valid(raw) {
		return result.NetworkError[json.RawMessage]("respuesta no es JSON válido")
	}
	return result.Ok(json.RawMessage(raw))
}

func (c *Client) contextFailure(ctx context.Context) result.Result[json.RawMessage] {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return result.Timeout[json.RawMessage](fmt.Sprintf("sin respuesta en %s", c.timeout))
	}
	return result.Canceled[json.RawMessage](ctx.Err().Error())
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// errorDetails cuerpo de error: JSON decodificado si es posible, si no el texto plano.
func errorDetails(raw []byte) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err == nil {
		return v
	}
	return string(trimmed)
}

// Request emite la petición y decodifica la respuesta exitosa en T.
// Un cuerpo vacío produce el valor cero de T.
func Request[T any](ctx context.Context, c *Client, method, path string, body any) result.Result[T] {
	r := c.Do(ctx, method, path, body)
	if !r.OK {
		return result.Result[T]{Error: r.Error}
	}
	var out T
	if len(bytes.TrimSpace(r.Data)) == 0 {
		return result.Ok(out)
	}
	if err := json.Unmarshal(r.Data, &out); err != nil {
		return result.NetworkError[T](fmt.Sprintf("decodificar respuesta: %v", err))
	}
	return result.Ok(out)
}
