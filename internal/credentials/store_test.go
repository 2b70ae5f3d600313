package credentials_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vandar/client/internal/credentials"
)

func TestStore_SaveLoadClear(t *testing.T) {
	store := credentials.NewStore(filepath.Join(t.TempDir(), "vandar", "token"))

	_, err := store.Load()
	assert.ErrorIs(t, err, credentials.ErrNoToken)

	require.NoError(t, store.Save("tok-123"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	require.NoError(t, store.Clear())

	_, err = store.Load()
	assert.ErrorIs(t, err, credentials.ErrNoToken)
}

func TestStore_ClearMissingFile(t *testing.T) {
	store := credentials.NewStore(filepath.Join(t.TempDir(), "token"))

	// Clearing an absent credential is a no-op.
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := credentials.NewStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Save("first"))
	require.NoError(t, store.Save("second"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}
