package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageMissingFileIsEmpty(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "nested", "storage.json"))

	value, ok, err := storage.GetItem(context.Background(), "sid")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", value)
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	assertion := assert.New(t)
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	ctx := context.Background()

	first := NewFileStorage(path)
	require.NoError(t, first.SetItem(ctx, "sid", "abc"))
	require.NoError(t, first.SetItem(ctx, "other", "1"))
	require.NoError(t, first.SetItem(ctx, "sid", "def"))

	second := NewFileStorage(path)
	value, ok, err := second.GetItem(ctx, "sid")
	require.NoError(t, err)
	assertion.True(ok)
	assertion.Equal("def", value)

	value, ok, err = second.GetItem(ctx, "other")
	require.NoError(t, err)
	assertion.True(ok)
	assertion.Equal("1", value)

	_, err = os.Stat(path + ".tmp")
	assertion.True(os.IsNotExist(err))
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileStorage(path).GetItem(context.Background(), "sid")
	assert.Error(t, err)
}

func TestDefaultStoragePath(t *testing.T) {
	assert.Equal(t, DefaultStorageFileName, filepath.Base(DefaultStoragePath()))
	assert.Equal(t, "local-storage.json", filepath.Base(NewFileStorage("").Path))
}
