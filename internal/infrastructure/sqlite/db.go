// Package sqlite persiste las colecciones del backend REST en una tabla SQLite,
// un registro por fila serializado como JSON.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

const schema = `CREATE TABLE IF NOT EXISTS records (
	seq     INTEGER PRIMARY KEY AUTOINCREMENT,
	kind    TEXT NOT NULL,
	id      TEXT NOT NULL,
	payload BLOB NOT NULL,
	UNIQUE (kind, id)
)`

// DB base SQLite compartida por todos los repositorios.
type DB struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base en path y asegura el esquema.
func Open(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		path = "erp.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: crear directorios: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir: %w", err)
	}
	// Un solo escritor; también hace que ":memory:" sea una única base.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: crear tabla records: %w", err)
	}
	return &DB{db: db, path: path}, nil
}

// Close cierra la base.
func (d *DB) Close() error { return d.db.Close() }

// Path ruta configurada.
func (d *DB) Path() string { return d.path }

// SQL expone el *sql.DB subyacente.
func (d *DB) SQL() *sql.DB { return d.db }
