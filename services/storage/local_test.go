package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveRemoveList(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	ctx := context.Background()
	key := "payment_proofs/7/receipt.png"

	url, err := store.Save(ctx, key, strings.NewReader("fake image bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/"+key, url)

	data, err := os.ReadFile(filepath.Join(dir, "payment_proofs", "7", "receipt.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{key}, keys)

	require.NoError(t, store.Remove(ctx, key))
	keys, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLocalStorageRemoveMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "payment_proofs/1/gone.jpg"))
}

func TestLocalStoragePathTraversalContained(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	outside := filepath.Join(filepath.Dir(dir), "escaped.txt")
	_, err = store.Save(context.Background(), "../escaped.txt", strings.NewReader("x"), "text/plain")
	require.NoError(t, err)

	_, statErr := os.Stat(outside)
	assert.True(t, os.IsNotExist(statErr), "file must not land outside the base dir")
}

func TestGenerateProofKey(t *testing.T) {
	key := GenerateProofKey(42, "My Receipt.PNG")
	assert.True(t, strings.HasPrefix(key, "payment_proofs/42/"))
	assert.True(t, strings.HasSuffix(key, ".png"), "extension is lowercased: %s", key)

	other := GenerateProofKey(42, "My Receipt.PNG")
	assert.NotEqual(t, key, other, "keys are unique per upload")
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/png", ContentTypeFor("a.png"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("a.unknownext"))
}
