package entity

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Patch actualización parcial: claves JSON (camelCase) con el nuevo valor.
// Se fusiona de forma superficial: las claves presentes reemplazan, las ausentes no se tocan.
type Patch map[string]any

// Keys devuelve las claves del patch ordenadas (para logs).
func (p Patch) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyPatch fusiona patch sobre current. La clave "id" se ignora: el id de un registro no cambia.
// Las claves que no coinciden exactamente con una clave JSON de T se descartan.
func ApplyPatch[T any](current T, patch Patch) (T, error) {
	var zero T
	base, err := json.Marshal(current)
	if err != nil {
		return zero, fmt.Errorf("patch: serializar registro: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return zero, fmt.Errorf("patch: registro no es un objeto: %w", err)
	}
	for k, v := range patch {
		if _, known := fields[k]; !known || k == "id" {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return zero, fmt.Errorf("patch: serializar %q: %w", k, err)
		}
		fields[k] = raw
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("patch: serializar fusión: %w", err)
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("patch: %w", err)
	}
	return out, nil
}

// PatchFrom construye un patch con todos los campos de v salvo el id
// (lo usan los diálogos de edición, que envían el borrador completo).
func PatchFrom[T any](v T) (Patch, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("patch: serializar borrador: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("patch: borrador no es un objeto: %w", err)
	}
	p := make(Patch, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		p[k] = v
	}
	return p, nil
}

// DecodePatch interpreta un cuerpo JSON como patch conservando los valores crudos.
func DecodePatch(body []byte) (Patch, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	p := make(Patch, len(fields))
	for k, v := range fields {
		p[k] = v
	}
	return p, nil
}
