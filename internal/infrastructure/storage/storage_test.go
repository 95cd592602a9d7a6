package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/omnipos-terminal/internal/infrastructure/storage"
)

// Ciclo básico de llaves: Set escribe, Get lee, Delete elimina y es
// idempotente sobre llaves ausentes.
func TestStorage_CicloDeLlaves(t *testing.T) {
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)

	_, ok := st.Get(storage.KeyAccessToken)
	assert.False(t, ok, "llave ausente debe reportar false")

	require.NoError(t, st.Set(storage.KeyAccessToken, "tok-123"))
	v, ok := st.Get(storage.KeyAccessToken)
	require.True(t, ok)
	assert.Equal(t, "tok-123", v)

	require.NoError(t, st.Delete(storage.KeyAccessToken))
	_, ok = st.Get(storage.KeyAccessToken)
	assert.False(t, ok)

	assert.NoError(t, st.Delete(storage.KeyAccessToken),
		"eliminar una llave ausente no es error")
}

// Los snapshots van y vuelven como JSON bajo <nombre>.json.
func TestStorage_SnapshotIdaYVuelta(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.New(dir)
	require.NoError(t, err)

	type estado struct {
		Items []string `json:"items"`
		Total int      `json:"total"`
	}
	require.NoError(t, st.SaveSnapshot("mi-store", estado{Items: []string{"a", "b"}, Total: 2}))

	var out estado
	found, err := st.LoadSnapshot("mi-store", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out.Items)
	assert.Equal(t, 2, out.Total)

	_, err = os.Stat(filepath.Join(dir, "mi-store.json"))
	assert.NoError(t, err, "el snapshot debe vivir en <nombre>.json")
}

// Snapshot inexistente: false sin error (primer arranque).
func TestStorage_SnapshotAusente(t *testing.T) {
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)

	var out map[string]any
	found, err := st.LoadSnapshot("nunca-guardado", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

// Snapshot corrupto: error explícito para que el llamador decida.
func TestStorage_SnapshotCorrupto(t *testing.T) {
	st, err := storage.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.Set("roto.json", "{no es json"))

	var out map[string]any
	_, err = st.LoadSnapshot("roto", &out)
	assert.Error(t, err)
}

// Los tokens son credenciales: el archivo queda con permisos 0600 y el
// directorio con 0700.
func TestStorage_PermisosRestrictivos(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "estado")
	st, err := storage.New(dir)
	require.NoError(t, err)
	require.NoError(t, st.Set(storage.KeyRefreshToken, "rt"))

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(dir, storage.KeyRefreshToken))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}
