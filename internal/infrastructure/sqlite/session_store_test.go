package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/domain/repository"
	"github.com/gregweisz-cmd/oxford-mileage-tracker-sub013/internal/infrastructure/sqlite"
)

func newStore(t *testing.T) *sqlite.SessionStore {
	t.Helper()
	// El directorio intermedio no existe: NewSessionStore debe crearlo.
	path := filepath.Join(t.TempDir(), "cache", "session.db")
	store, err := sqlite.NewSessionStore(path)
	require.NoError(t, err, "debe poder crearse el archivo de caché")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSessionStore_SetGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, "tok-1"))

	got, err := store.Get(ctx, repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
}

func TestSessionStore_ClaveInexistente_DevuelveVacio(t *testing.T) {
	store := newStore(t)

	got, err := store.Get(context.Background(), "no-existe")
	require.NoError(t, err, "una clave ausente no es error")
	assert.Empty(t, got)
}

func TestSessionStore_SetSobrescribe(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, "tok-viejo"))
	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, "tok-nuevo"))

	got, err := store.Get(ctx, repository.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-nuevo", got)
}

func TestSessionStore_Delete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyEmployeeID, "emp-1"))
	require.NoError(t, store.Delete(ctx, repository.KeyEmployeeID))

	got, err := store.Get(ctx, repository.KeyEmployeeID)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Borrar lo que no existe tampoco es error.
	assert.NoError(t, store.Delete(ctx, repository.KeyEmployeeID))
}

func TestSessionStore_Clear_EliminaTodasLasClaves(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, repository.KeyAuthToken, "tok"))
	require.NoError(t, store.Set(ctx, repository.KeyEmployeeID, "emp-1"))
	require.NoError(t, store.Set(ctx, repository.KeyEmployeeSnapshot, `{"id":"emp-1"}`))

	require.NoError(t, store.Clear(ctx))

	for _, key := range []string{repository.KeyAuthToken, repository.KeyEmployeeID, repository.KeyEmployeeSnapshot} {
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, got, "la clave %q debe quedar eliminada", key)
	}
}
