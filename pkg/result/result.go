// Package result implementa el sobre Result[T] que devuelven todas las operaciones de los adaptadores:
// o bien {ok:true, data} o bien {ok:false, error:{code, message, details?, retryable?}}.
// Los fallos esperados nunca se reportan como error de Go sino en la rama ok=false.
package result

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Códigos simbólicos.
const (
	CodeTimeout      = "timeout"
	CodeNetworkError = "network_error"
	CodeCanceled     = "canceled"
)

// Code código de error: un status HTTP numérico o un símbolo ("timeout", "network_error").
type Code struct {
	status int
	symbol string
}

// StatusCode construye un código numérico.
func StatusCode(status int) Code { return Code{status: status} }

// SymbolCode construye un código simbólico.
func SymbolCode(symbol string) Code { return Code{symbol: symbol} }

// Status devuelve el status HTTP y si el código es numérico.
func (c Code) Status() (int, bool) { return c.status, c.symbol == "" && c.status != 0 }

// Symbol devuelve el símbolo (vacío si el código es numérico).
func (c Code) Symbol() string { return c.symbol }

func (c Code) String() string {
	if c.symbol != "" {
		return c.symbol
	}
	return strconv.Itoa(c.status)
}

// MarshalJSON serializa como número o como string según el tipo de código.
func (c Code) MarshalJSON() ([]byte, error) {
	if c.symbol != "" {
		return json.Marshal(c.symbol)
	}
	return json.Marshal(c.status)
}

// UnmarshalJSON acepta número o string.
func (c *Code) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*c = Code{status: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("result: código inválido %s", string(b))
	}
	*c = Code{symbol: s}
	return nil
}

// ErrorInfo describe un fallo. Retryable es metadata informativa: ninguna capa reintenta.
type ErrorInfo struct {
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (e *ErrorInfo) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Message
}

// Result sobre de éxito/error. Consultar OK antes de usar Data.
type Result[T any] struct {
	OK    bool       `json:"ok"`
	Data  T          `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
}

// Ok resultado exitoso.
func Ok[T any](data T) Result[T] { return Result[T]{OK: true, Data: data} }

// Fail resultado fallido.
func Fail[T any](info ErrorInfo) Result[T] { return Result[T]{Error: &info} }

// Timeout el transporte superó el plazo (reintentable).
func Timeout[T any](message string) Result[T] {
	return Fail[T](ErrorInfo{Code: SymbolCode(CodeTimeout), Message: message, Retryable: true})
}

// NetworkError el transporte falló (reintentable).
func NetworkError[T any](message string) Result[T] {
	return Fail[T](ErrorInfo{Code: SymbolCode(CodeNetworkError), Message: message, Retryable: true})
}

// HTTPError el servidor rechazó la petición (no reintentable).
func HTTPError[T any](status int, message string, details any) Result[T] {
	return Fail[T](ErrorInfo{Code: StatusCode(status), Message: message, Details: details})
}

// Canceled quien llamó canceló el contexto.
func Canceled[T any](message string) Result[T] {
	return Fail[T](ErrorInfo{Code: SymbolCode(CodeCanceled), Message: message})
}

// Unwrap devuelve Data o el ErrorInfo como error.
func (r Result[T]) Unwrap() (T, error) {
	if !r.OK {
		var zero T
		if r.Error == nil {
			return zero, &ErrorInfo{Code: SymbolCode("unknown"), Message: "resultado sin datos"}
		}
		return zero, r.Error
	}
	return r.Data, nil
}

// Map transforma el dato de un resultado exitoso conservando el error.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.OK {
		return Result[U]{Error: r.Error}
	}
	return Ok(fn(r.Data))
}
