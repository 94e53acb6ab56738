package datasource_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"calcetto-tracker/internal/datasource"
	"calcetto-tracker/internal/matchfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) (*datasource.Resolver, string, string) {
	t.Helper()
	base := t.TempDir()
	realRoot := filepath.Join(base, "data")
	mockRoot := filepath.Join(base, "data_mock")
	return datasource.New(realRoot, mockRoot), realRoot, mockRoot
}

func seedRoster(t *testing.T, root string, names ...string) {
	t.Helper()
	content := "id,name\n"
	for i, name := range names {
		content += string(rune('1'+i)) + "," + name + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "players.csv"), []byte(content), 0o644))
}

func seedMatch(t *testing.T, root string) {
	t.Helper()
	rows := []matchfile.PlayerRow{
		{Team: matchfile.TeamA, Player: "Ana", Goals: 1},
		{Team: matchfile.TeamB, Player: "Bruno", Goals: 0},
	}
	_, err := matchfile.Write(filepath.Join(root, "matches"), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), "", rows)
	require.NoError(t, err)
}

func TestResolveBootstrapsBothRoots(t *testing.T) {
	resolver, realRoot, mockRoot := newResolver(t)

	paths, err := resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, datasource.KindMock, paths.Kind)

	for _, root := range []string{realRoot, mockRoot} {
		assert.DirExists(t, filepath.Join(root, "matches"))
		assert.FileExists(t, filepath.Join(root, "players.csv"))
		assert.FileExists(t, filepath.Join(root, "deleted_matches.json"))
	}
}

func TestResolvePrefersUsableRealRoot(t *testing.T) {
	resolver, realRoot, _ := newResolver(t)

	_, err := resolver.Resolve()
	require.NoError(t, err)

	seedRoster(t, realRoot, "Ana", "Bruno")
	seedMatch(t, realRoot)

	paths, err := resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, datasource.KindReal, paths.Kind)
	assert.Equal(t, realRoot, paths.Root)
}

func TestResolveEmptyRosterFallsBackToMock(t *testing.T) {
	resolver, realRoot, _ := newResolver(t)

	_, err := resolver.Resolve()
	require.NoError(t, err)

	// Real match files exist, but the roster is only a header.
	seedMatch(t, realRoot)

	paths, err := resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, datasource.KindMock, paths.Kind)
}

func TestResolveRosterWithoutMatchesFallsBackToMock(t *testing.T) {
	resolver, realRoot, _ := newResolver(t)

	_, err := resolver.Resolve()
	require.NoError(t, err)

	seedRoster(t, realRoot, "Ana")

	paths, err := resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, datasource.KindMock, paths.Kind)
}

func TestResolveSwitchesOverWhenRealDataLands(t *testing.T) {
	resolver, realRoot, _ := newResolver(t)

	paths, err := resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, datasource.KindMock, paths.Kind)

	// Data dropped in externally between requests flips the next read.
	seedRoster(t, realRoot, "Ana", "Bruno")
	seedMatch(t, realRoot)

	paths, err = resolver.Resolve()
	require.NoError(t, err)
	assert.Equal(t, datasource.KindReal, paths.Kind)
}
