package registry_test

import (
	"encoding/json"
	"os"
	"testing"

	"calcetto-tracker/internal/datasource"
	"calcetto-tracker/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	paths datasource.Paths
}

func (r staticResolver) Resolve() (datasource.Paths, error) {
	return r.paths, nil
}

func setupRegistry(t *testing.T) (registry.DeletedStore, datasource.Paths) {
	t.Helper()
	paths := datasource.NewPaths(datasource.KindReal, t.TempDir())
	require.NoError(t, datasource.EnsureLayout(paths))
	return registry.New(staticResolver{paths: paths}), paths
}

func TestLoadEmptyRegistry(t *testing.T) {
	store, _ := setupRegistry(t)

	ids, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMarkDeletedIsIdempotent(t *testing.T) {
	store, paths := setupRegistry(t)

	require.NoError(t, store.MarkDeleted("2026-01-05__one__match"))
	require.NoError(t, store.MarkDeleted("2026-01-05__one__match"))
	require.NoError(t, store.MarkDeleted("2026-01-12__two__match"))

	ids, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.True(t, ids["2026-01-05__one__match"])
	assert.True(t, ids["2026-01-12__two__match"])

	// Deleting twice leaves the same persisted state as deleting once.
	raw, err := os.ReadFile(paths.DeletedFile)
	require.NoError(t, err)
	var list []string
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Equal(t, []string{"2026-01-05__one__match", "2026-01-12__two__match"}, list)
}

func TestLoadRejectsCorruptRegistry(t *testing.T) {
	store, paths := setupRegistry(t)

	require.NoError(t, os.WriteFile(paths.DeletedFile, []byte("{not json"), 0o644))

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON list")
}

func TestRegistriesAreScopedPerRoot(t *testing.T) {
	first, _ := setupRegistry(t)
	second, _ := setupRegistry(t)

	require.NoError(t, first.MarkDeleted("m1"))

	ids, err := second.Load()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
