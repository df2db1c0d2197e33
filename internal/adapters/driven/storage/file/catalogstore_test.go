package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griot-labs/griot-cli/internal/core/domain"
)

func TestCatalogStore_SaveAndLoad(t *testing.T) {
	store := NewCatalogStore(filepath.Join(t.TempDir(), "catalog.csv"))
	ctx := context.Background()

	entries := []domain.CatalogEntry{
		{ID: 1, Name: "Interview with E. Marsh", Pages: 34},
		{ID: 2, Name: "Mill Workers Panel", Pages: 58},
	}
	require.NoError(t, store.Save(ctx, entries))

	catalog, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	// Ids come from row position, 1-based.
	assert.Equal(t, "Interview with E. Marsh", catalog[1].Name)
	assert.Equal(t, 34, catalog[1].Pages)
	assert.Equal(t, "Mill Workers Panel", catalog[2].Name)
}

func TestCatalogStore_Load_MissingFile(t *testing.T) {
	store := NewCatalogStore(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := store.Load(context.Background())

	assert.Error(t, err)
}

func TestCatalogStore_Load_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,pages\n"), 0o644))

	catalog, err := NewCatalogStore(path).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestCatalogStore_Load_UnparsablePageCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,pages\nMarsh,many\n"), 0o644))

	catalog, err := NewCatalogStore(path).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "Marsh", catalog[1].Name)
	assert.Zero(t, catalog[1].Pages)
}

func TestCatalog_NameFallback(t *testing.T) {
	catalog := domain.Catalog{1: {ID: 1, Name: "Marsh"}}

	assert.Equal(t, "Marsh", catalog.Name(1))
	assert.Equal(t, "Unknown", catalog.Name(99))
}
