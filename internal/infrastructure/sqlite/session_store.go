// Package sqlite implementa el caché local de sesión sobre un archivo SQLite.
// El acceso concurrente desde otro proceso no está protegido: la autoridad
// sobre el estado de sesión siempre es el backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore implementación del puerto SessionStore sobre SQLite.
type SessionStore struct {
	db *sql.DB
}

// NewSessionStore abre (o crea) el archivo de caché y garantiza el esquema.
func NewSessionStore(path string) (*SessionStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("crear directorio del caché: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir caché de sesión: %w", err)
	}
	const schema = `
		CREATE TABLE IF NOT EXISTS session_cache (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema del caché: %w", err)
	}
	return &SessionStore{db: db}, nil
}

// Get devuelve el valor de la clave, o cadena vacía si no existe.
func (s *SessionStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session_cache WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("leer clave %q: %w", key, err)
	}
	return value, nil
}

// Set guarda o reemplaza el valor de la clave.
func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_cache (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("guardar clave %q: %w", key, err)
	}
	return nil
}

// Delete elimina una clave (sin error si no existe).
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM session_cache WHERE key = ?`, key); err != nil {
		return fmt.Errorf("eliminar clave %q: %w", key, err)
	}
	return nil
}

// Clear elimina todas las claves persistidas de la sesión.
func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_cache`); err != nil {
		return fmt.Errorf("limpiar caché de sesión: %w", err)
	}
	return nil
}

// Close cierra el archivo de caché.
func (s *SessionStore) Close() error {
	return s.db.Close()
}
